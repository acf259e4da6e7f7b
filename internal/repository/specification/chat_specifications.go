package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByConversationID scopes messages to one conversation.
type ByConversationID struct {
	ConversationID uuid.UUID
}

func (s ByConversationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("conversation_id = ?", s.ConversationID)
}

// ByProjectID scopes conversations to one project.
type ByProjectID struct {
	ProjectID uuid.UUID
}

func (s ByProjectID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("project_id = ?", s.ProjectID)
}

// WithoutProject selects conversations started outside any project.
type WithoutProject struct{}

func (s WithoutProject) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("project_id IS NULL")
}
