package implementation

import (
	"context"
	"errors"

	"luma-companion-be/internal/entity"
	"luma-companion-be/internal/mapper"
	"luma-companion-be/internal/model"
	"luma-companion-be/internal/repository/contract"
	"luma-companion-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CommunityPostRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CommunityMapper
}

func NewCommunityPostRepository(db *gorm.DB) contract.CommunityPostRepository {
	return &CommunityPostRepositoryImpl{
		db:     db,
		mapper: mapper.NewCommunityMapper(),
	}
}

func (r *CommunityPostRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CommunityPostRepositoryImpl) Create(ctx context.Context, post *entity.CommunityPost) error {
	m := r.mapper.PostToModel(post)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*post = *r.mapper.PostToEntity(m)
	return nil
}

func (r *CommunityPostRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CommunityPost, error) {
	var m model.CommunityPost
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PostToEntity(&m), nil
}

func (r *CommunityPostRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CommunityPost, error) {
	var models []*model.CommunityPost
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.CommunityPost, len(models))
	for i, m := range models {
		entities[i] = r.mapper.PostToEntity(m)
	}
	return entities, nil
}
