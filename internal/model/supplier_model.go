package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Supplier struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name         string         `gorm:"type:varchar(255);not null"`
	Sector       string         `gorm:"type:varchar(100)"`
	ContactEmail string         `gorm:"type:varchar(255)"`
	Phone        string         `gorm:"type:varchar(50)"`
	City         string         `gorm:"type:varchar(100)"`
	Rating       float64        `gorm:"not null;default:0"`
	Tags         datatypes.JSON `gorm:"type:jsonb"`
	Status       string         `gorm:"type:varchar(50);not null;default:'active'"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Supplier) TableName() string {
	return "suppliers"
}
