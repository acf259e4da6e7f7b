package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateDocumentRequest struct {
	Name        string    `json:"name" validate:"required"`
	Type        string    `json:"type" validate:"required,oneof=pdf docx xlsx csv txt"`
	Size        int64     `json:"size"`
	Supplier    string    `json:"supplier"`
	Description string    `json:"description"`
	StoragePath string    `json:"storage_path"`
	UploadDate  time.Time `json:"upload_date"`
}

type UpdateDocumentRequest struct {
	Id          uuid.UUID
	Name        string `json:"name" validate:"required"`
	Supplier    string `json:"supplier"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=processing ready failed"`
}

type DocumentResponse struct {
	Id          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	Size        int64      `json:"size"`
	Status      string     `json:"status"`
	Supplier    string     `json:"supplier,omitempty"`
	Description string     `json:"description,omitempty"`
	StoragePath string     `json:"storage_path,omitempty"`
	Keywords    string     `json:"keywords,omitempty"`
	UploadDate  time.Time  `json:"upload_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// ListDocumentsQuery carries the filter, sort and pagination parameters.
// Type accepts the sentinel "all" to disable the filter.
type ListDocumentsQuery struct {
	Search    string `query:"search"`
	Type      string `query:"type"`
	SortBy    string `query:"sort_by"`
	SortOrder string `query:"sort_order"`
	Page      int    `query:"page"`
	PerPage   int    `query:"per_page"`
}

type ListDocumentsResponse struct {
	Items      []DocumentResponse `json:"items"`
	Page       int                `json:"page"`
	PerPage    int                `json:"per_page"`
	TotalPages int                `json:"total_pages"`
	TotalItems int                `json:"total_items"`
}

type BulkIdsRequest struct {
	Ids []uuid.UUID `json:"ids" validate:"required,min=1"`
}

type BulkDeleteResponse struct {
	Deleted int `json:"deleted"`
}

type DocumentDownloadItem struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	StoragePath string    `json:"storage_path"`
}

type BulkDownloadResponse struct {
	Items []DocumentDownloadItem `json:"items"`
}
