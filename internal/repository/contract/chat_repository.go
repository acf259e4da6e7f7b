package contract

import (
	"context"

	"ai-procurement-be/internal/entity"
	"ai-procurement-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ConversationRepository interface {
	Create(ctx context.Context, conv *entity.ChatConversation) error
	Update(ctx context.Context, conv *entity.ChatConversation) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatConversation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatConversation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type ChatMessageRepository interface {
	Create(ctx context.Context, msg *entity.ChatMessage) error
	CreateBatch(ctx context.Context, msgs []*entity.ChatMessage) error
	DeleteByConversationId(ctx context.Context, conversationId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
