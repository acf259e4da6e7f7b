package service

import (
	"context"

	"ai-procurement-be/internal/dto"
	"ai-procurement-be/internal/entity"
	"ai-procurement-be/internal/repository/specification"
	"ai-procurement-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IConversationService interface {
	List(ctx context.Context, userId uuid.UUID) ([]*dto.ConversationResponse, error)
	ListByProject(ctx context.Context, userId, projectId uuid.UUID) ([]*dto.ConversationResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateConversationRequest) (*dto.ConversationResponse, error)
	Show(ctx context.Context, userId, id uuid.UUID) (*dto.ConversationDetailResponse, error)
	ListMessages(ctx context.Context, userId, id uuid.UUID) (*dto.MessageListResponse, error)
	AddMessage(ctx context.Context, userId, id uuid.UUID, req *dto.CreateMessageRequest) (*dto.MessageResponse, error)
	Delete(ctx context.Context, userId, id uuid.UUID) error
}

type conversationService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewConversationService(uowFactory unitofwork.RepositoryFactory) IConversationService {
	return &conversationService{
		uowFactory: uowFactory,
	}
}

func toConversationResponse(c *entity.ChatConversation) *dto.ConversationResponse {
	return &dto.ConversationResponse{
		Id:        c.Id,
		ProjectId: c.ProjectId,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (s *conversationService) List(ctx context.Context, userId uuid.UUID) ([]*dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	convs, err := uow.ConversationRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ConversationResponse, len(convs))
	for i, c := range convs {
		res[i] = toConversationResponse(c)
	}
	return res, nil
}

func (s *conversationService) ListByProject(ctx context.Context, userId, projectId uuid.UUID) ([]*dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	convs, err := uow.ConversationRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByProjectID{ProjectID: projectId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ConversationResponse, len(convs))
	for i, c := range convs {
		res[i] = toConversationResponse(c)
	}
	return res, nil
}

func (s *conversationService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateConversationRequest) (*dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conv := entity.ChatConversation{
		Id:        uuid.New(),
		UserId:    userId,
		ProjectId: req.ProjectId,
		Title:     req.Title,
	}
	if err := uow.ConversationRepository().Create(ctx, &conv); err != nil {
		return nil, err
	}

	return toConversationResponse(&conv), nil
}

func (s *conversationService) Show(ctx context.Context, userId, id uuid.UUID) (*dto.ConversationDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conv, err := uow.ConversationRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, nil
	}

	msgs, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: id},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	msgResponses := make([]dto.MessageResponse, len(msgs))
	for i, m := range msgs {
		msgResponses[i] = dto.MessageResponse{
			Id:        m.Id,
			Role:      string(m.Role),
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		}
	}

	return &dto.ConversationDetailResponse{
		Conversation: *toConversationResponse(conv),
		Messages:     msgResponses,
	}, nil
}

func (s *conversationService) ListMessages(ctx context.Context, userId, id uuid.UUID) (*dto.MessageListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conv, err := uow.ConversationRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, nil
	}

	msgs, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: id},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.MessageResponse, len(msgs))
	for i, m := range msgs {
		items[i] = dto.MessageResponse{
			Id:        m.Id,
			Role:      string(m.Role),
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		}
	}
	return &dto.MessageListResponse{Items: items}, nil
}

func (s *conversationService) AddMessage(ctx context.Context, userId, id uuid.UUID, req *dto.CreateMessageRequest) (*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conv, err := uow.ConversationRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, nil
	}

	role := entity.MessageRole(req.Role)
	if role == "" {
		role = entity.MessageRoleUser
	}

	msg := entity.ChatMessage{
		Id:             uuid.New(),
		ConversationId: id,
		Role:           role,
		Content:        req.Content,
	}
	if err := uow.ChatMessageRepository().Create(ctx, &msg); err != nil {
		return nil, err
	}

	// Bump the thread so it surfaces at the top of the listing.
	if err := uow.ConversationRepository().Update(ctx, conv); err != nil {
		return nil, err
	}

	return &dto.MessageResponse{
		Id:        msg.Id,
		Role:      string(msg.Role),
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}, nil
}

func (s *conversationService) Delete(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conv, err := uow.ConversationRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if conv == nil {
		return nil
	}

	// Messages and conversation row go together.
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().DeleteByConversationId(ctx, id); err != nil {
		return err
	}
	if err := uow.ConversationRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}
