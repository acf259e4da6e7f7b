package contract

import (
	"context"

	"ai-procurement-be/internal/entity"
	"ai-procurement-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByIds(ctx context.Context, ids []uuid.UUID) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Supplier, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Supplier, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
