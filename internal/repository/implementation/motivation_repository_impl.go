package implementation

import (
	"context"

	"luma-companion-be/internal/entity"
	"luma-companion-be/internal/mapper"
	"luma-companion-be/internal/model"
	"luma-companion-be/internal/repository/contract"
	"luma-companion-be/internal/repository/specification"

	"gorm.io/gorm"
)

type MotivationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MotivationMapper
}

func NewMotivationRepository(db *gorm.DB) contract.MotivationRepository {
	return &MotivationRepositoryImpl{
		db:     db,
		mapper: mapper.NewMotivationMapper(),
	}
}

func (r *MotivationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MotivationRepositoryImpl) Create(ctx context.Context, motivation *entity.Motivation) error {
	m := r.mapper.ToModel(motivation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*motivation = *r.mapper.ToEntity(m)
	return nil
}

func (r *MotivationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Motivation, error) {
	var models []*model.Motivation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Motivation, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
