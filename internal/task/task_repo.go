package task

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hrapp/internal/ownership"
)

//go:generate mockgen -source=task_repo.go -destination=mock/task_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, t *Task) error
	FindByID(ctx context.Context, id string) (*Task, error)
	FindAll(ctx context.Context, overdueBefore *time.Time) ([]Task, error)
	FindAllByUser(ctx context.Context, userID string, overdueBefore *time.Time) ([]Task, error)
	Update(ctx context.Context, t *Task) error
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

func (r *repository) Create(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Task, error) {
	var t Task
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	return &t, err
}

func overdueFilter(q *gorm.DB, overdueBefore *time.Time) *gorm.DB {
	if overdueBefore != nil {
		q = q.Where("due_date < ? AND is_completed = ?", *overdueBefore, false)
	}
	return q
}

func (r *repository) FindAll(ctx context.Context, overdueBefore *time.Time) ([]Task, error) {
	var tasks []Task
	q := overdueFilter(r.db.WithContext(ctx), overdueBefore)
	err := q.Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

func (r *repository) FindAllByUser(ctx context.Context, userID string, overdueBefore *time.Time) ([]Task, error) {
	var tasks []Task
	q := overdueFilter(r.db.WithContext(ctx).Scopes(ownership.Scope(userID)), overdueBefore)
	err := q.Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

func (r *repository) Update(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Task{}, "id = ?", id).Error
}
