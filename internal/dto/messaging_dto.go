package dto

import "github.com/google/uuid"

// PublishIndexDocumentMessage is the payload on the document indexing
// topic. The consumer extracts keywords and flips the status to ready.
type PublishIndexDocumentMessage struct {
	DocumentId uuid.UUID `json:"document_id"`
}
