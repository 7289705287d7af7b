package schedule

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hrapp/internal/ownership"
)

//go:generate mockgen -source=schedule_repo.go -destination=mock/schedule_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, s *Schedule) error
	FindByID(ctx context.Context, id string) (*Schedule, error)
	FindAll(ctx context.Context) ([]Schedule, error)
	FindAllByUser(ctx context.Context, userID string) ([]Schedule, error)
	HasOverlap(ctx context.Context, userID string, date time.Time, startTime, endTime string, excludeID *string) (bool, error)
	Update(ctx context.Context, s *Schedule) error
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

func (r *repository) Create(ctx context.Context, s *Schedule) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Schedule, error) {
	var s Schedule
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) FindAll(ctx context.Context) ([]Schedule, error) {
	var schedules []Schedule
	err := r.db.WithContext(ctx).
		Order("date DESC, start_time ASC").
		Find(&schedules).Error
	return schedules, err
}

func (r *repository) FindAllByUser(ctx context.Context, userID string) ([]Schedule, error) {
	var schedules []Schedule
	err := r.db.WithContext(ctx).
		Scopes(ownership.Scope(userID)).
		Order("date DESC, start_time ASC").
		Find(&schedules).Error
	return schedules, err
}

// HasOverlap memuat jadwal user pada tanggal yang sama dan membandingkan
// interval lewat Schedule.OverlapsRange. Baris per user+tanggal sedikit,
// jadi perbandingan di aplikasi lebih murah daripada predikat SQL tiga arah.
func (r *repository) HasOverlap(ctx context.Context, userID string, date time.Time, startTime, endTime string, excludeID *string) (bool, error) {
	var rows []Schedule

	q := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	if err := q.Find(&rows).Error; err != nil {
		return false, err
	}

	for i := range rows {
		if rows[i].OverlapsRange(startTime, endTime) {
			return true, nil
		}
	}
	return false, nil
}

func (r *repository) Update(ctx context.Context, s *Schedule) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Schedule{}, "id = ?", id).Error
}
