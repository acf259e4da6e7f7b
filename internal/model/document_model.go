package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Document struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Type        string    `gorm:"type:varchar(20);not null"`
	Size        int64     `gorm:"not null;default:0"`
	Status      string    `gorm:"type:varchar(50);not null;default:'processing'"`
	Supplier    string    `gorm:"type:varchar(255)"`
	Description string    `gorm:"type:text"`
	StoragePath string    `gorm:"type:varchar(512)"`
	Keywords    string    `gorm:"type:text"`
	UploadDate  time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Document) TableName() string {
	return "documents"
}
