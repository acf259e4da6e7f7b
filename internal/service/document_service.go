package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ai-procurement-be/internal/dto"
	"ai-procurement-be/internal/entity"
	"ai-procurement-be/internal/repository/specification"
	"ai-procurement-be/internal/repository/unitofwork"
	"ai-procurement-be/pkg/events"
	"ai-procurement-be/pkg/listview"
	pktNats "ai-procurement-be/pkg/nats"

	"github.com/google/uuid"
)

type IDocumentService interface {
	List(ctx context.Context, userId uuid.UUID, query *dto.ListDocumentsQuery) (*dto.ListDocumentsResponse, error)
	Show(ctx context.Context, userId, id uuid.UUID) (*dto.DocumentResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateDocumentRequest) (*dto.DocumentResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateDocumentRequest) (*dto.DocumentResponse, error)
	Delete(ctx context.Context, userId, id uuid.UUID) error
	BulkDelete(ctx context.Context, userId uuid.UUID, ids []uuid.UUID) (int, error)
	BulkDownload(ctx context.Context, userId uuid.UUID, ids []uuid.UUID) (*dto.BulkDownloadResponse, error)
}

type documentService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewDocumentService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) IDocumentService {
	return &documentService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

func toDocumentResponse(d *entity.Document) *dto.DocumentResponse {
	return &dto.DocumentResponse{
		Id:          d.Id,
		Name:        d.Name,
		Type:        d.Type,
		Size:        d.Size,
		Status:      string(d.Status),
		Supplier:    d.Supplier,
		Description: d.Description,
		StoragePath: d.StoragePath,
		Keywords:    d.Keywords,
		UploadDate:  d.UploadDate,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func documentComparator(sortBy string) func(a, b *entity.Document) int {
	switch sortBy {
	case "date", "upload_date":
		return func(a, b *entity.Document) int {
			switch {
			case a.UploadDate.Before(b.UploadDate):
				return -1
			case a.UploadDate.After(b.UploadDate):
				return 1
			default:
				return 0
			}
		}
	case "size":
		return func(a, b *entity.Document) int {
			return listview.CompareInts(a.Size, b.Size)
		}
	case "type":
		return func(a, b *entity.Document) int {
			return listview.CompareStrings(a.Type, b.Type)
		}
	default:
		return func(a, b *entity.Document) int {
			return listview.CompareStrings(a.Name, b.Name)
		}
	}
}

// List loads the user's full collection and filters it in memory with
// the same semantics the web client applies: substring search over name
// and supplier, a type filter with the "all" sentinel, stable sort and
// clamped pagination.
func (s *documentService) List(ctx context.Context, userId uuid.UUID, query *dto.ListDocumentsQuery) (*dto.ListDocumentsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	docs, err := uow.DocumentRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}

	filtered := listview.Apply(docs,
		listview.Text[*entity.Document]{
			Query: query.Search,
			Fields: func(d *entity.Document) []string {
				return []string{d.Name, d.Description, d.Supplier, d.Keywords}
			},
		},
		listview.Exact[*entity.Document]{
			Value: query.Type,
			Field: func(d *entity.Document) string { return d.Type },
		},
	)

	order := listview.SortAsc
	if strings.EqualFold(query.SortOrder, "desc") {
		order = listview.SortDesc
	}
	listview.SortBy(filtered, documentComparator(query.SortBy), order)

	page, state := listview.Paginate(filtered, query.Page, query.PerPage)

	items := make([]dto.DocumentResponse, len(page))
	for i, d := range page {
		items[i] = *toDocumentResponse(d)
	}

	return &dto.ListDocumentsResponse{
		Items:      items,
		Page:       state.Page,
		PerPage:    state.PerPage,
		TotalPages: state.TotalPages,
		TotalItems: int(state.TotalItems),
	}, nil
}

func (s *documentService) Show(ctx context.Context, userId, id uuid.UUID) (*dto.DocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	return toDocumentResponse(doc), nil
}

func (s *documentService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	uploadDate := req.UploadDate
	if uploadDate.IsZero() {
		uploadDate = time.Now()
	}

	doc := entity.Document{
		Id:          uuid.New(),
		UserId:      userId,
		Name:        req.Name,
		Type:        req.Type,
		Size:        req.Size,
		Status:      entity.DocumentStatusProcessing,
		Supplier:    req.Supplier,
		Description: req.Description,
		StoragePath: req.StoragePath,
		UploadDate:  uploadDate,
		CreatedAt:   time.Now(),
	}
	if err := uow.DocumentRepository().Create(ctx, &doc); err != nil {
		return nil, err
	}

	msgPayload := dto.PublishIndexDocumentMessage{DocumentId: doc.Id}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.NewDocumentCreated(userId.String(), doc.Id.String(), doc.Name)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish DOCUMENT_CREATED event: %v\n", err)
		}
	}

	return toDocumentResponse(&doc), nil
}

func (s *documentService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateDocumentRequest) (*dto.DocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}

	reindex := doc.Name != req.Name || doc.Description != req.Description
	doc.Name = req.Name
	doc.Supplier = req.Supplier
	doc.Description = req.Description
	if req.Status != "" {
		doc.Status = entity.DocumentStatus(req.Status)
	}

	if err := uow.DocumentRepository().Update(ctx, doc); err != nil {
		return nil, err
	}

	// Name and description feed the keyword index, so reindex on change.
	if reindex {
		msgPayload := dto.PublishIndexDocumentMessage{DocumentId: doc.Id}
		if msgJson, err := json.Marshal(msgPayload); err == nil {
			if err := s.publisherService.Publish(ctx, msgJson); err != nil {
				fmt.Printf("[WARN] Failed to queue reindex for %s: %v\n", doc.Id, err)
			}
		}
	}

	if s.eventPublisher != nil {
		evt := events.NewDocumentUpdated(userId.String(), doc.Id.String(), doc.Name)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish DOCUMENT_UPDATED event: %v\n", err)
		}
	}

	return toDocumentResponse(doc), nil
}

func (s *documentService) Delete(ctx context.Context, userId, id uuid.UUID) error {
	deleted, err := s.BulkDelete(ctx, userId, []uuid.UUID{id})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return nil
	}
	return nil
}

// BulkDelete resolves the requested ids against the user's current
// collection before deleting, so stale ids from an outdated selection
// are silently dropped instead of failing the whole batch.
func (s *documentService) BulkDelete(ctx context.Context, userId uuid.UUID, ids []uuid.UUID) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	current, err := uow.DocumentRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return 0, err
	}

	requested := make([]string, len(ids))
	for i, id := range ids {
		requested[i] = id.String()
	}
	currentIds := make([]string, len(current))
	for i, d := range current {
		currentIds[i] = d.Id.String()
	}

	resolved := listview.ResolveSelection(requested, currentIds)
	if len(resolved) == 0 {
		return 0, nil
	}

	targetIds := make([]uuid.UUID, 0, len(resolved))
	for _, raw := range resolved {
		if id, err := uuid.Parse(raw); err == nil {
			targetIds = append(targetIds, id)
		}
	}

	deleted, err := uow.DocumentRepository().DeleteByIds(ctx, targetIds)
	if err != nil {
		return 0, err
	}

	if s.eventPublisher != nil && deleted > 0 {
		evt := events.NewDocumentDeleted(userId.String(), resolved)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish DOCUMENT_DELETED event: %v\n", err)
		}
	}

	return int(deleted), nil
}

// BulkDownload resolves the selection the same way BulkDelete does and
// returns the storage locations; the file bytes live in the external
// store, so the client fetches them directly.
func (s *documentService) BulkDownload(ctx context.Context, userId uuid.UUID, ids []uuid.UUID) (*dto.BulkDownloadResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	current, err := uow.DocumentRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}

	requested := make([]string, len(ids))
	for i, id := range ids {
		requested[i] = id.String()
	}
	byId := make(map[string]*entity.Document, len(current))
	currentIds := make([]string, len(current))
	for i, d := range current {
		byId[d.Id.String()] = d
		currentIds[i] = d.Id.String()
	}

	resolved := listview.ResolveSelection(requested, currentIds)

	items := make([]dto.DocumentDownloadItem, 0, len(resolved))
	for _, raw := range resolved {
		d := byId[raw]
		items = append(items, dto.DocumentDownloadItem{
			Id:          d.Id,
			Name:        d.Name,
			StoragePath: d.StoragePath,
		})
	}

	return &dto.BulkDownloadResponse{Items: items}, nil
}
