package service

import (
	"context"
	"testing"
	"time"

	"ai-procurement-be/internal/dto"
	"ai-procurement-be/internal/entity"
	"ai-procurement-be/internal/repository/contract"
	"ai-procurement-be/internal/repository/specification"
	"ai-procurement-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// In-memory repositories backing the list tests; only the read paths
// the List endpoints hit are live.

type stubDocumentRepo struct {
	contract.DocumentRepository
	docs []*entity.Document
}

func (r *stubDocumentRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Document, error) {
	return r.docs, nil
}

type stubSupplierRepo struct {
	contract.SupplierRepository
	suppliers []*entity.Supplier
}

func (r *stubSupplierRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Supplier, error) {
	return r.suppliers, nil
}

type stubUnitOfWork struct {
	unitofwork.UnitOfWork
	docRepo contract.DocumentRepository
	supRepo contract.SupplierRepository
}

func (u *stubUnitOfWork) DocumentRepository() contract.DocumentRepository { return u.docRepo }
func (u *stubUnitOfWork) SupplierRepository() contract.SupplierRepository { return u.supRepo }

type stubUowFactory struct {
	uow   unitofwork.UnitOfWork
	calls int
}

func (f *stubUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	f.calls++
	return f.uow
}

type noopPublisher struct{}

func (noopPublisher) Publish(ctx context.Context, payload []byte) error { return nil }

func docFixture(name, docType, supplier string, size int64) *entity.Document {
	return &entity.Document{
		Id:         uuid.New(),
		Name:       name,
		Type:       docType,
		Size:       size,
		Status:     entity.DocumentStatusReady,
		Supplier:   supplier,
		UploadDate: time.Now(),
		CreatedAt:  time.Now(),
	}
}

func TestDocumentListSearchCountsAllMatches(t *testing.T) {
	repo := &stubDocumentRepo{docs: []*entity.Document{
		docFixture("Invoice_Alpha.pdf", "pdf", "Acme Corp", 100),
		docFixture("Contract_Beta.docx", "docx", "Acme Corp", 200),
		docFixture("Invoice_Gamma.pdf", "pdf", "Globex", 300),
	}}
	factory := &stubUowFactory{uow: &stubUnitOfWork{docRepo: repo}}
	svc := NewDocumentService(factory, noopPublisher{}, nil)

	res, err := svc.List(context.Background(), uuid.New(), &dto.ListDocumentsQuery{Search: "invoice"})
	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalItems)
	assert.Len(t, res.Items, 2)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 1, res.TotalPages)
}

func TestDocumentListPaginationClamp(t *testing.T) {
	repo := &stubDocumentRepo{docs: []*entity.Document{
		docFixture("a.pdf", "pdf", "", 1),
		docFixture("b.pdf", "pdf", "", 2),
		docFixture("c.pdf", "pdf", "", 3),
	}}
	factory := &stubUowFactory{uow: &stubUnitOfWork{docRepo: repo}}
	svc := NewDocumentService(factory, noopPublisher{}, nil)

	res, err := svc.List(context.Background(), uuid.New(), &dto.ListDocumentsQuery{Page: 9, PerPage: 2})
	assert.NoError(t, err)
	assert.Equal(t, 3, res.TotalItems)
	assert.Equal(t, 2, res.TotalPages)
	assert.Equal(t, 2, res.Page)
	assert.Len(t, res.Items, 1)
}

func TestSupplierListRatingRange(t *testing.T) {
	repo := &stubSupplierRepo{suppliers: []*entity.Supplier{
		{Id: uuid.New(), Name: "Acme Corp", Sector: "Manufacturing", Rating: 4.5, Status: entity.SupplierStatusActive},
		{Id: uuid.New(), Name: "Globex", Sector: "Logistics", Rating: 2.0, Status: entity.SupplierStatusActive},
		{Id: uuid.New(), Name: "Initech", Sector: "Consulting", Rating: 3.9, Status: entity.SupplierStatusActive},
	}}
	factory := &stubUowFactory{uow: &stubUnitOfWork{supRepo: repo}}
	svc := NewSupplierService(factory, nil)

	res, err := svc.List(context.Background(), uuid.New(), &dto.ListSuppliersQuery{RatingMin: 3.5})
	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalItems)
	for _, item := range res.Items {
		assert.GreaterOrEqual(t, item.Rating, 3.5)
	}
}
