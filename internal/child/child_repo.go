package child

import (
	"context"

	"gorm.io/gorm"

	"hrapp/internal/ownership"
)

//go:generate mockgen -source=child_repo.go -destination=mock/child_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, c *Child) error
	FindByID(ctx context.Context, id string) (*Child, error)
	FindAll(ctx context.Context) ([]Child, error)
	FindAllByUser(ctx context.Context, userID string) ([]Child, error)
	Update(ctx context.Context, c *Child) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, c *Child) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Child, error) {
	var c Child
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *repository) FindAll(ctx context.Context) ([]Child, error) {
	var children []Child
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&children).Error
	return children, err
}

func (r *repository) FindAllByUser(ctx context.Context, userID string) ([]Child, error) {
	var children []Child
	err := r.db.WithContext(ctx).
		Scopes(ownership.Scope(userID)).
		Order("created_at DESC").
		Find(&children).Error
	return children, err
}

func (r *repository) Update(ctx context.Context, c *Child) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Child{}, "id = ?", id).Error
}
