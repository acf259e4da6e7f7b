package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ai-procurement-be/internal/dto"
	"ai-procurement-be/internal/entity"
	"ai-procurement-be/internal/pkg/logger"
	"ai-procurement-be/internal/repository/memory"
	"ai-procurement-be/internal/repository/specification"
	"ai-procurement-be/internal/repository/unitofwork"
	"ai-procurement-be/pkg/chatflow"
	"ai-procurement-be/pkg/events"
	pktNats "ai-procurement-be/pkg/nats"

	"github.com/google/uuid"
)

type IAssistantService interface {
	Chat(ctx context.Context, userId uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	LoadSession(ctx context.Context, userId uuid.UUID, sessionId string) (*dto.SessionStateResponse, error)
	DeleteSession(ctx context.Context, userId uuid.UUID, sessionId string) error
	ClearError(userId uuid.UUID, sessionId string) error
}

// assistantService glues the in-memory turn reconciler to the webhook
// responder and the persistence layer. Live sessions sit in the memory
// store; every resolved turn is also written to Postgres so history
// survives process restarts.
type assistantService struct {
	uowFactory     unitofwork.RepositoryFactory
	sessions       *memory.SessionRepository
	responder      chatflow.Responder
	reconciler     *chatflow.Reconciler
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewAssistantService(
	uowFactory unitofwork.RepositoryFactory,
	sessions *memory.SessionRepository,
	responder chatflow.Responder,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IAssistantService {
	return &assistantService{
		uowFactory:     uowFactory,
		sessions:       sessions,
		responder:      responder,
		reconciler:     chatflow.NewReconciler(),
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *assistantService) Chat(ctx context.Context, userId uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	sess, err := s.resolveSession(ctx, userId, req.SessionId)
	if err != nil {
		return nil, err
	}

	// Blank input must not create a session or touch any state.
	if strings.TrimSpace(req.Message) == "" {
		res := &dto.SendChatResponse{SessionId: req.SessionId}
		if sess != nil {
			res.SessionId = sess.ID
			res.Messages = sess.Snapshot()
			res.Error = sess.Error
		}
		return res, nil
	}

	if sess == nil {
		sess, err = s.startSession(ctx, userId)
		if err != nil {
			return nil, err
		}
	}

	turn, sendErr := s.reconciler.Send(ctx, sess, req.Message, s.responder)
	if turn == nil && sendErr == nil {
		// Whitespace-only input, nothing changed.
		return &dto.SendChatResponse{
			SessionId: sess.ID,
			Messages:  sess.Snapshot(),
		}, nil
	}

	switch {
	case turn.State == chatflow.StateResolved:
		if err := s.persistTurn(ctx, sess, turn); err != nil {
			s.log.Error("assistant", "failed to persist resolved turn", map[string]interface{}{
				"session_id": sess.ID,
				"error":      err.Error(),
			})
		}
		s.publishEvent(ctx, events.NewAssistantTurnResolved(userId.String(), sess.ID))

	case turn.State == chatflow.StateFailed:
		// The user message survives the failed turn, persist it alone.
		if err := s.persistTurn(ctx, sess, turn); err != nil {
			s.log.Error("assistant", "failed to persist failed turn", map[string]interface{}{
				"session_id": sess.ID,
				"error":      err.Error(),
			})
		}
		reason := ""
		if sendErr != nil {
			reason = sendErr.Error()
		}
		s.publishEvent(ctx, events.NewAssistantTurnFailed(userId.String(), sess.ID, reason))
	}

	s.sessions.Save(sess)

	return &dto.SendChatResponse{
		SessionId: sess.ID,
		Messages:  sess.Snapshot(),
		Error:     sess.Error,
	}, nil
}

func (s *assistantService) LoadSession(ctx context.Context, userId uuid.UUID, sessionId string) (*dto.SessionStateResponse, error) {
	sess, err := s.resolveSession(ctx, userId, sessionId)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		s.log.Warn("assistant", "session not found", map[string]interface{}{
			"session_id": sessionId,
			"user_id":    userId,
		})
		return nil, nil
	}

	return &dto.SessionStateResponse{
		SessionId: sess.ID,
		Title:     sess.Title,
		Messages:  sess.Snapshot(),
		Loading:   sess.Loading,
		Error:     sess.Error,
	}, nil
}

func (s *assistantService) DeleteSession(ctx context.Context, userId uuid.UUID, sessionId string) error {
	convId, err := uuid.Parse(sessionId)
	if err != nil {
		return errors.New("invalid session id")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	conv, err := uow.ConversationRepository().FindOne(ctx,
		specification.ByID{ID: convId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if conv == nil {
		s.sessions.Delete(sessionId)
		return nil
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().DeleteByConversationId(ctx, convId); err != nil {
		return err
	}
	if err := uow.ConversationRepository().Delete(ctx, convId); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.sessions.Delete(sessionId)
	return nil
}

func (s *assistantService) ClearError(userId uuid.UUID, sessionId string) error {
	sess, found := s.sessions.Get(sessionId)
	if !found || sess.UserID != userId.String() {
		return nil
	}
	s.reconciler.ClearError(sess)
	s.sessions.Save(sess)
	return nil
}

// resolveSession returns the live session, rehydrating it from Postgres
// when the cache entry has expired. Returns nil when the id is empty or
// the conversation does not exist for this user.
func (s *assistantService) resolveSession(ctx context.Context, userId uuid.UUID, sessionId string) (*chatflow.Session, error) {
	if sessionId == "" {
		return nil, nil
	}

	if sess, found := s.sessions.Get(sessionId); found {
		if sess.UserID != userId.String() {
			return nil, nil
		}
		return sess, nil
	}

	convId, err := uuid.Parse(sessionId)
	if err != nil {
		return nil, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	conv, err := uow.ConversationRepository().FindOne(ctx,
		specification.ByID{ID: convId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, nil
	}

	msgs, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: convId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	history := make([]chatflow.Message, len(msgs))
	for i, m := range msgs {
		history[i] = chatflow.Message{
			ID:        m.Id.String(),
			Role:      chatflow.Role(m.Role),
			Content:   m.Content,
			Timestamp: m.CreatedAt,
		}
	}

	sess := &chatflow.Session{
		ID:        conv.Id.String(),
		UserID:    userId.String(),
		Title:     conv.Title,
		Messages:  history,
		CreatedAt: conv.CreatedAt,
		UpdatedAt: conv.UpdatedAt,
	}
	s.sessions.Save(sess)
	return sess, nil
}

// startSession creates the conversation row on first send; the title is
// derived from the creation timestamp.
func (s *assistantService) startSession(ctx context.Context, userId uuid.UUID) (*chatflow.Session, error) {
	now := time.Now()
	sess := chatflow.NewSession(userId.String(), now)

	convId, err := uuid.Parse(sess.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid generated session id: %w", err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	conv := entity.ChatConversation{
		Id:        convId,
		UserId:    userId,
		Title:     sess.Title,
		CreatedAt: now,
	}
	if err := uow.ConversationRepository().Create(ctx, &conv); err != nil {
		return nil, err
	}

	s.sessions.Save(sess)
	return sess, nil
}

// persistTurn writes the turn's surviving messages to Postgres. For a
// resolved turn that is the user message and the reply; for a failed
// turn only the user message remains.
func (s *assistantService) persistTurn(ctx context.Context, sess *chatflow.Session, turn *chatflow.Turn) error {
	convId, err := uuid.Parse(sess.ID)
	if err != nil {
		return err
	}

	var toStore []*entity.ChatMessage
	for _, m := range sess.Snapshot() {
		if m.ID != turn.UserMessageID && m.ID != turn.PlaceholderID {
			continue
		}
		msgId, err := uuid.Parse(m.ID)
		if err != nil {
			continue
		}
		toStore = append(toStore, &entity.ChatMessage{
			Id:             msgId,
			ConversationId: convId,
			Role:           entity.MessageRole(m.Role),
			Content:        m.Content,
			CreatedAt:      m.Timestamp,
		})
	}
	if len(toStore) == 0 {
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ChatMessageRepository().CreateBatch(ctx, toStore); err != nil {
		return err
	}

	conv, err := uow.ConversationRepository().FindOne(ctx, specification.ByID{ID: convId})
	if err != nil || conv == nil {
		return err
	}
	conv.UpdatedAt = time.Now()
	return uow.ConversationRepository().Update(ctx, conv)
}

func (s *assistantService) publishEvent(ctx context.Context, evt events.Event) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.log.Warn("assistant", "failed to publish activity event", map[string]interface{}{
			"event": evt.EventType(),
			"error": err.Error(),
		})
	}
}
