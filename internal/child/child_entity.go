package child

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Child struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID        uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`
	Name          string    `gorm:"column:name;type:varchar(255);not null"`
	DateOfBirth   time.Time `gorm:"column:date_of_birth;type:date;not null"`
	Gender        string    `gorm:"column:gender;type:varchar(20)"`
	HasDisability bool      `gorm:"column:has_disability;not null;default:false"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Child) TableName() string {
	return "children"
}
