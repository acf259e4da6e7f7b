package service

import (
	"context"
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

type ISupplierService interface {
	List(ctx context.Context, userId uuid.UUID, query *dto.ListSuppliersQuery) (*dto.ListSuppliersResponse, error)
	Show(ctx context.Context, userId, id uuid.UUID) (*dto.SupplierResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSupplierRequest) (*dto.SupplierResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateSupplierRequest) (*dto.SupplierResponse, error)
	Delete(ctx context.Context, userId, id uuid.UUID) error
	BulkDelete(ctx context.Context, userId uuid.UUID, ids []uuid.UUID) (int, error)
}

type supplierService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewSupplierService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) ISupplierService {
	return &supplierService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		Id:           s.Id,
		Name:         s.Name,
		Sector:       s.Sector,
		ContactEmail: s.ContactEmail,
		Phone:        s.Phone,
		City:         s.City,
		Rating:       s.Rating,
		Tags:         s.Tags,
		Status:       string(s.Status),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func supplierComparator(sortBy string) func(a, b *entity.Supplier) int {
	switch sortBy {
	case "rating":
		return func(a, b *entity.Supplier) int {
			return listview.CompareFloats(a.Rating, b.Rating)
		}
	case "sector":
		return func(a, b *entity.Supplier) int {
			return listview.CompareStrings(a.Sector, b.Sector)
		}
	default:
		return func(a, b *entity.Supplier) int {
			return listview.CompareStrings(a.Name, b.Name)
		}
	}
}

func (s *supplierService) List(ctx context.Context, userId uuid.UUID, query *dto.ListSuppliersQuery) (*dto.ListSuppliersResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	suppliers, err := uow.SupplierRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}

	ratingMax := query.RatingMax
	if ratingMax == 0 {
		ratingMax = 5
	}

	filtered := listview.Apply(suppliers,
		listview.Text[*entity.Supplier]{
			Query: query.Search,
			Fields: func(sup *entity.Supplier) []string {
				fields := []string{sup.Name, sup.Sector, sup.City, sup.ContactEmail}
				return append(fields, sup.Tags...)
			},
		},
		listview.Exact[*entity.Supplier]{
			Value: query.Sector,
			Field: func(sup *entity.Supplier) string { return sup.Sector },
		},
		listview.Range[*entity.Supplier]{
			Min:    query.RatingMin,
			Max:    ratingMax,
			Active: query.RatingMin > 0 || query.RatingMax > 0,
			Field:  func(sup *entity.Supplier) float64 { return sup.Rating },
		},
	)

	order := listview.SortAsc
	if strings.EqualFold(query.SortOrder, "desc") {
		order = listview.SortDesc
	}
	listview.SortBy(filtered, supplierComparator(query.SortBy), order)

	page, state := listview.Paginate(filtered, query.Page, query.PerPage)

	items := make([]dto.SupplierResponse, len(page))
	for i, sup := range page {
		items[i] = *toSupplierResponse(sup)
	}

	return &dto.ListSuppliersResponse{
		Items:      items,
		Page:       state.Page,
		PerPage:    state.PerPage,
		TotalPages: state.TotalPages,
		TotalItems: int(state.TotalItems),
	}, nil
}

func (s *supplierService) Show(ctx context.Context, userId, id uuid.UUID) (*dto.SupplierResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	supplier, err := uow.SupplierRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	return toSupplierResponse(supplier), nil
}

func (s *supplierService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	supplier := entity.Supplier{
		Id:           uuid.New(),
		UserId:       userId,
		Name:         req.Name,
		Sector:       req.Sector,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
		City:         req.City,
		Rating:       req.Rating,
		Tags:         req.Tags,
		Status:       entity.SupplierStatusActive,
		CreatedAt:    time.Now(),
	}
	if err := uow.SupplierRepository().Create(ctx, &supplier); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.NewSupplierCreated(userId.String(), supplier.Id.String(), supplier.Name)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish SUPPLIER_CREATED event: %v\n", err)
		}
	}

	return toSupplierResponse(&supplier), nil
}

func (s *supplierService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	supplier, err := uow.SupplierRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}

	supplier.Name = req.Name
	supplier.Sector = req.Sector
	supplier.ContactEmail = req.ContactEmail
	supplier.Phone = req.Phone
	supplier.City = req.City
	supplier.Rating = req.Rating
	supplier.Tags = req.Tags
	if req.Status != "" {
		supplier.Status = entity.SupplierStatus(req.Status)
	}

	if err := uow.SupplierRepository().Update(ctx, supplier); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.NewSupplierUpdated(userId.String(), supplier.Id.String(), supplier.Name)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish SUPPLIER_UPDATED event: %v\n", err)
		}
	}

	return toSupplierResponse(supplier), nil
}

func (s *supplierService) Delete(ctx context.Context, userId, id uuid.UUID) error {
	_, err := s.BulkDelete(ctx, userId, []uuid.UUID{id})
	return err
}

// BulkDelete drops ids that no longer belong to the user's collection
// before deleting, matching the selection resolve semantics.
func (s *supplierService) BulkDelete(ctx context.Context, userId uuid.UUID, ids []uuid.UUID) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	current, err := uow.SupplierRepository().FindAll(ctx,
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
	for i, sup := range current {
		currentIds[i] = sup.Id.String()
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

	deleted, err := uow.SupplierRepository().DeleteByIds(ctx, targetIds)
	if err != nil {
		return 0, err
	}

	if s.eventPublisher != nil && deleted > 0 {
		evt := events.NewSupplierDeleted(userId.String(), resolved)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish SUPPLIER_DELETED event: %v\n", err)
		}
	}

	return int(deleted), nil
}
