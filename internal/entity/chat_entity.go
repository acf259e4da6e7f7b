package entity

import (
	"time"

	"github.com/google/uuid"
)

type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

// ChatConversation is a persisted thread. ProjectId is nil for
// conversations started outside a project context.
type ChatConversation struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	ProjectId *uuid.UUID
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ChatMessage struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	Role           MessageRole
	Content        string
	Metadata       map[string]interface{}
	CreatedAt      time.Time
}
