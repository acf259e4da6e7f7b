package mapper

import (
	"encoding/json"
	"time"

	"ai-procurement-be/internal/entity"
	"ai-procurement-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SupplierMapper struct{}

func NewSupplierMapper() *SupplierMapper {
	return &SupplierMapper{}
}

func (m *SupplierMapper) ToEntity(s *model.Supplier) *entity.Supplier {
	if s == nil {
		return nil
	}

	var deletedAt *time.Time
	if s.DeletedAt.Valid {
		t := s.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	var tags []string
	if len(s.Tags) > 0 {
		_ = json.Unmarshal(s.Tags, &tags)
	}

	return &entity.Supplier{
		Id:           s.Id,
		UserId:       s.UserId,
		Name:         s.Name,
		Sector:       s.Sector,
		ContactEmail: s.ContactEmail,
		Phone:        s.Phone,
		City:         s.City,
		Rating:       s.Rating,
		Tags:         tags,
		Status:       entity.SupplierStatus(s.Status),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    updatedAt,
		DeletedAt:    deletedAt,
		IsDeleted:    s.DeletedAt.Valid,
	}
}

func (m *SupplierMapper) ToModel(s *entity.Supplier) *model.Supplier {
	if s == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if s.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *s.DeletedAt, Valid: true}
	} else if s.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	var tags datatypes.JSON
	if s.Tags != nil {
		if raw, err := json.Marshal(s.Tags); err == nil {
			tags = raw
		}
	}

	return &model.Supplier{
		Id:           s.Id,
		UserId:       s.UserId,
		Name:         s.Name,
		Sector:       s.Sector,
		ContactEmail: s.ContactEmail,
		Phone:        s.Phone,
		City:         s.City,
		Rating:       s.Rating,
		Tags:         tags,
		Status:       string(s.Status),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    updatedAt,
		DeletedAt:    deletedAt,
	}
}

func (m *SupplierMapper) ToEntities(suppliers []*model.Supplier) []*entity.Supplier {
	entities := make([]*entity.Supplier, len(suppliers))
	for i, s := range suppliers {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

func (m *SupplierMapper) ToModels(suppliers []*entity.Supplier) []*model.Supplier {
	models := make([]*model.Supplier, len(suppliers))
	for i, s := range suppliers {
		models[i] = m.ToModel(s)
	}
	return models
}
