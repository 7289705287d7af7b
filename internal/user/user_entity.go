package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID            uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string     `gorm:"column:name;type:varchar(255);not null"`
	Email         string     `gorm:"column:email;type:text;not null;uniqueIndex"`
	Password      string     `gorm:"column:password;type:text;not null"`
	Role          string     `gorm:"column:role;type:varchar(50);not null;default:'EMPLOYEE'"`
	Phone         string     `gorm:"column:phone;type:varchar(30)"`
	DateOfBirth   *time.Time `gorm:"column:date_of_birth;type:date"`
	CinNumber     string     `gorm:"column:cin_number;type:varchar(30)"`
	CnssNumber    string     `gorm:"column:cnss_number;type:varchar(30)"`
	MaritalStatus string     `gorm:"column:marital_status;type:varchar(30)"`
	JobTitle      string     `gorm:"column:job_title;type:varchar(100)"`
	Service       string     `gorm:"column:service;type:varchar(100)"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (User) TableName() string {
	return "users"
}
