package schedule

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StartTime dan EndTime disimpan sebagai "HH:MM"; format zero-padded
// membuat perbandingan string sejalan dengan urutan waktu.
type Schedule struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index:idx_schedule_user_date"`
	Date      time.Time `gorm:"column:date;type:date;not null;index:idx_schedule_user_date"`
	StartTime string    `gorm:"column:start_time;type:varchar(5);not null"`
	EndTime   string    `gorm:"column:end_time;type:varchar(5);not null"`
	Service   string    `gorm:"column:service;type:varchar(100)"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Schedule) TableName() string {
	return "schedules"
}

// OverlapsRange memeriksa tiga bentuk tabrakan interval [start,end):
// start baru di dalam interval ini, end baru di dalam interval ini,
// atau interval baru menelan interval ini. Interval yang bersentuhan
// di batas (end lama == start baru) bukan tabrakan.
func (s *Schedule) OverlapsRange(startTime, endTime string) bool {
	switch {
	case s.StartTime <= startTime && s.EndTime > startTime:
		return true
	case s.StartTime < endTime && s.EndTime >= endTime:
		return true
	case s.StartTime >= startTime && s.EndTime <= endTime:
		return true
	}
	return false
}
