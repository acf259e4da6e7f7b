package service

import (
	"context"
	"testing"
	"time"

	"ai-procurement-be/internal/dto"
	"ai-procurement-be/internal/repository/memory"
	"ai-procurement-be/pkg/chatflow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func TestChatBlankMessageCreatesNoSession(t *testing.T) {
	factory := &stubUowFactory{uow: &stubUnitOfWork{}}
	sessions := memory.NewSessionRepository()
	svc := NewAssistantService(factory, sessions, nil, nil, noopLogger{})

	for _, message := range []string{"", "   ", "\n\t "} {
		res, err := svc.Chat(context.Background(), uuid.New(), &dto.SendChatRequest{Message: message})
		assert.NoError(t, err)
		assert.Empty(t, res.SessionId)
		assert.Empty(t, res.Messages)
	}

	// No conversation row was started and no unit of work was opened.
	assert.Equal(t, 0, factory.calls)
}

func TestChatBlankMessageLeavesExistingSessionUntouched(t *testing.T) {
	factory := &stubUowFactory{uow: &stubUnitOfWork{}}
	sessions := memory.NewSessionRepository()
	svc := NewAssistantService(factory, sessions, nil, nil, noopLogger{})

	userId := uuid.New()
	sess := chatflow.NewSession(userId.String(), time.Now())
	sess.Messages = []chatflow.Message{
		{ID: uuid.New().String(), Role: chatflow.RoleUser, Content: "hello", Timestamp: time.Now()},
	}
	sessions.Save(sess)

	res, err := svc.Chat(context.Background(), userId, &dto.SendChatRequest{
		SessionId: sess.ID,
		Message:   "   ",
	})
	assert.NoError(t, err)
	assert.Equal(t, sess.ID, res.SessionId)
	assert.Len(t, res.Messages, 1)
	assert.Equal(t, "hello", res.Messages[0].Content)
	assert.Equal(t, 0, factory.calls)
}
