package leavebalance

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hrapp/internal/ownership"
)

//go:generate mockgen -source=leavebalance_repo.go -destination=mock/leavebalance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, b *LeaveBalance) error
	FindByID(ctx context.Context, id string) (*LeaveBalance, error)
	FindAll(ctx context.Context) ([]LeaveBalance, error)
	FindAllByUser(ctx context.Context, userID string, year int) ([]LeaveBalance, error)
	FindByUserYearType(ctx context.Context, userID string, year int, leaveTypeID uint) (*LeaveBalance, error)
	FindByUserYearTypeForUpdate(ctx context.Context, userID string, year int, leaveTypeID uint) (*LeaveBalance, error)
	Update(ctx context.Context, b *LeaveBalance) error
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

func (r *repository) Create(ctx context.Context, b *LeaveBalance) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	return &b, err
}

func (r *repository) FindAll(ctx context.Context) ([]LeaveBalance, error) {
	var balances []LeaveBalance
	err := r.db.WithContext(ctx).
		Order("year DESC, created_at DESC").
		Find(&balances).Error
	return balances, err
}

func (r *repository) FindAllByUser(ctx context.Context, userID string, year int) ([]LeaveBalance, error) {
	var balances []LeaveBalance
	q := r.db.WithContext(ctx).Scopes(ownership.Scope(userID))
	if year > 0 {
		q = q.Where("year = ?", year)
	}
	err := q.Order("leave_type_id ASC").Find(&balances).Error
	return balances, err
}

func (r *repository) FindByUserYearType(ctx context.Context, userID string, year int, leaveTypeID uint) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND year = ? AND leave_type_id = ?", userID, year, leaveTypeID).
		First(&b).Error
	return &b, err
}

// FindByUserYearTypeForUpdate mengunci baris saldo (SELECT ... FOR UPDATE)
// supaya dua approval paralel tidak bisa mendebit saldo yang sama.
func (r *repository) FindByUserYearTypeForUpdate(ctx context.Context, userID string, year int, leaveTypeID uint) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND year = ? AND leave_type_id = ?", userID, year, leaveTypeID).
		First(&b).Error
	return &b, err
}

func (r *repository) Update(ctx context.Context, b *LeaveBalance) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&LeaveBalance{}, "id = ?", id).Error
}
