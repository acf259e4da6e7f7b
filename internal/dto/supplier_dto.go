package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSupplierRequest struct {
	Name         string   `json:"name" validate:"required"`
	Sector       string   `json:"sector"`
	ContactEmail string   `json:"contact_email" validate:"omitempty,email"`
	Phone        string   `json:"phone"`
	City         string   `json:"city"`
	Rating       float64  `json:"rating" validate:"gte=0,lte=5"`
	Tags         []string `json:"tags"`
}

type UpdateSupplierRequest struct {
	Id           uuid.UUID
	Name         string   `json:"name" validate:"required"`
	Sector       string   `json:"sector"`
	ContactEmail string   `json:"contact_email" validate:"omitempty,email"`
	Phone        string   `json:"phone"`
	City         string   `json:"city"`
	Rating       float64  `json:"rating" validate:"gte=0,lte=5"`
	Tags         []string `json:"tags"`
	Status       string   `json:"status" validate:"omitempty,oneof=active inactive"`
}

type SupplierResponse struct {
	Id           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Sector       string     `json:"sector,omitempty"`
	ContactEmail string     `json:"contact_email,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	City         string     `json:"city,omitempty"`
	Rating       float64    `json:"rating"`
	Tags         []string   `json:"tags,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// ListSuppliersQuery mirrors the document listing parameters plus the
// rating range. Sector accepts the sentinel "all".
type ListSuppliersQuery struct {
	Search    string  `query:"search"`
	Sector    string  `query:"sector"`
	RatingMin float64 `query:"rating_min"`
	RatingMax float64 `query:"rating_max"`
	SortBy    string  `query:"sort_by"`
	SortOrder string  `query:"sort_order"`
	Page      int     `query:"page"`
	PerPage   int     `query:"per_page"`
}

type ListSuppliersResponse struct {
	Items      []SupplierResponse `json:"items"`
	Page       int                `json:"page"`
	PerPage    int                `json:"per_page"`
	TotalPages int                `json:"total_pages"`
	TotalItems int                `json:"total_items"`
}
