package leavebalance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeaveBalance struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_balance_user_year_type"`
	Year        int       `gorm:"column:year;not null;uniqueIndex:idx_balance_user_year_type"`
	LeaveTypeID uint      `gorm:"column:leave_type_id;not null;uniqueIndex:idx_balance_user_year_type"`

	InitialBalance   int `gorm:"column:initial_balance;not null;default:0"`
	UsedBalance      int `gorm:"column:used_balance;not null;default:0"`
	RemainingBalance int `gorm:"column:remaining_balance;not null;default:0"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (LeaveBalance) TableName() string {
	return "leave_balances"
}
