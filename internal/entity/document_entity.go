package entity

import (
	"time"

	"github.com/google/uuid"
)

type DocumentStatus string

const (
	DocumentStatusProcessing DocumentStatus = "processing"
	DocumentStatusReady      DocumentStatus = "ready"
	DocumentStatusFailed     DocumentStatus = "failed"
)

type Document struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Name        string
	Type        string
	Size        int64
	Status      DocumentStatus
	Supplier    string
	Description string
	// StoragePath points at the object in the external file store.
	StoragePath string
	// Keywords is filled asynchronously by the indexing consumer.
	Keywords   string
	UploadDate time.Time
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
	IsDeleted  bool
}
