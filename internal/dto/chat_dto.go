package dto

import (
	"time"

	"github.com/google/uuid"

	"ai-procurement-be/pkg/chatflow"
)

type CreateConversationRequest struct {
	Title     string     `json:"title" validate:"required"`
	ProjectId *uuid.UUID `json:"project_id"`
}

type ConversationResponse struct {
	Id        uuid.UUID  `json:"id"`
	ProjectId *uuid.UUID `json:"project_id,omitempty"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type MessageResponse struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type ConversationDetailResponse struct {
	Conversation ConversationResponse `json:"conversation"`
	Messages     []MessageResponse    `json:"messages"`
}

type CreateMessageRequest struct {
	Role    string `json:"role" validate:"omitempty,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

type MessageListResponse struct {
	Items []MessageResponse `json:"items"`
}

// SendChatRequest starts or continues an assistant session. SessionId is
// empty on the first message of a new session. Blank messages are a
// silent no-op, not a validation error.
type SendChatRequest struct {
	SessionId string `json:"session_id"`
	Message   string `json:"message"`
}

type SendChatResponse struct {
	SessionId string             `json:"session_id"`
	Messages  []chatflow.Message `json:"messages"`
	Error     string             `json:"error,omitempty"`
}

type SessionStateResponse struct {
	SessionId string             `json:"session_id"`
	Title     string             `json:"title"`
	Messages  []chatflow.Message `json:"messages"`
	Loading   bool               `json:"is_loading"`
	Error     string             `json:"error,omitempty"`
}
