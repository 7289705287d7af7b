package leaverequest

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// IsTerminal melaporkan apakah status sudah final. Request final tidak
// boleh diubah maupun dihapus.
func IsTerminal(status string) bool {
	return status == StatusApproved || status == StatusRejected
}

type RequestUser struct {
	ID    uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name  string    `gorm:"column:name"`
	Email string    `gorm:"column:email"`
}

func (RequestUser) TableName() string {
	return "users"
}

type RequestLeaveType struct {
	ID       uint   `gorm:"column:id;primaryKey"`
	Name     string `gorm:"column:name"`
	Category string `gorm:"column:category"`
}

func (RequestLeaveType) TableName() string {
	return "leave_types"
}

type LeaveRequest struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID        uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`
	LeaveTypeID   uint      `gorm:"column:leave_type_id;not null"`
	StartDate     time.Time `gorm:"column:start_date;type:date;not null"`
	EndDate       time.Time `gorm:"column:end_date;type:date;not null"`
	Status        string    `gorm:"column:status;type:varchar(20);not null;default:'PENDING';index"`
	Reason        string    `gorm:"column:reason;type:text"`
	Comment       string    `gorm:"column:comment;type:text"`
	AttachmentURL string    `gorm:"column:attachment_url;type:text"`

	User      *RequestUser      `gorm:"foreignKey:UserID"`
	LeaveType *RequestLeaveType `gorm:"foreignKey:LeaveTypeID"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// Days menghitung lama cuti inklusif: start == end berarti 1 hari.
func (l *LeaveRequest) Days() int {
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}
