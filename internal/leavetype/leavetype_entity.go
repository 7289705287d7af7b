package leavetype

import (
	"time"

	"gorm.io/gorm"
)

const (
	CategoryAnnual    = "ANNUAL"
	CategorySick      = "SICK"
	CategoryMaternity = "MATERNITY"
	CategoryPaternity = "PATERNITY"
	CategoryUnpaid    = "UNPAID"
	CategoryOther     = "OTHER"
)

type LeaveType struct {
	ID          uint   `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string `gorm:"column:name;type:varchar(100);not null;uniqueIndex"`
	Category    string `gorm:"column:category;type:varchar(30);not null"`
	Description string `gorm:"column:description;type:text"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (LeaveType) TableName() string {
	return "leave_types"
}
