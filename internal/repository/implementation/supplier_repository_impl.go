package implementation

import (
	"context"
	"errors"

	"ai-procurement-be/internal/entity"
	"ai-procurement-be/internal/mapper"
	"ai-procurement-be/internal/model"
	"ai-procurement-be/internal/repository/contract"
	"ai-procurement-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupplierRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SupplierMapper
}

func NewSupplierRepository(db *gorm.DB) contract.SupplierRepository {
	return &SupplierRepositoryImpl{
		db:     db,
		mapper: mapper.NewSupplierMapper(),
	}
}

func (r *SupplierRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SupplierRepositoryImpl) Create(ctx context.Context, supplier *entity.Supplier) error {
	m := r.mapper.ToModel(supplier)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*supplier = *r.mapper.ToEntity(m)
	return nil
}

func (r *SupplierRepositoryImpl) Update(ctx context.Context, supplier *entity.Supplier) error {
	m := r.mapper.ToModel(supplier)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*supplier = *r.mapper.ToEntity(m)
	return nil
}

func (r *SupplierRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Supplier{}, id).Error
}

func (r *SupplierRepositoryImpl) DeleteByIds(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.Supplier{})
	return res.RowsAffected, res.Error
}

func (r *SupplierRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Supplier, error) {
	var m model.Supplier
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SupplierRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Supplier, error) {
	var models []*model.Supplier
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SupplierRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Supplier{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
