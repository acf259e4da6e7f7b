package entity

import (
	"time"

	"github.com/google/uuid"
)

type SupplierStatus string

const (
	SupplierStatusActive   SupplierStatus = "active"
	SupplierStatusInactive SupplierStatus = "inactive"
)

type Supplier struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	Name         string
	Sector       string
	ContactEmail string
	Phone        string
	City         string
	Rating       float64
	Tags         []string
	Status       SupplierStatus
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
	IsDeleted    bool
}
