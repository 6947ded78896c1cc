package implementation

import (
	"context"
	"errors"

	"luma-companion-be/internal/entity"
	"luma-companion-be/internal/mapper"
	"luma-companion-be/internal/model"
	"luma-companion-be/internal/repository/contract"
	"luma-companion-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommunityVoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CommunityMapper
}

func NewCommunityVoteRepository(db *gorm.DB) contract.CommunityVoteRepository {
	return &CommunityVoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewCommunityMapper(),
	}
}

func (r *CommunityVoteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CommunityVoteRepositoryImpl) Create(ctx context.Context, vote *entity.CommunityVote) error {
	m := r.mapper.VoteToModel(vote)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*vote = *r.mapper.VoteToEntity(m)
	return nil
}

func (r *CommunityVoteRepositoryImpl) Update(ctx context.Context, vote *entity.CommunityVote) error {
	m := r.mapper.VoteToModel(vote)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*vote = *r.mapper.VoteToEntity(m)
	return nil
}

func (r *CommunityVoteRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CommunityVote{}, id).Error
}

func (r *CommunityVoteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CommunityVote, error) {
	var m model.CommunityVote
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.VoteToEntity(&m), nil
}

func (r *CommunityVoteRepositoryImpl) CountByPost(ctx context.Context) ([]contract.VoteCount, error) {
	var counts []contract.VoteCount
	err := r.db.WithContext(ctx).
		Model(&model.CommunityVote{}).
		Select("post_id, COUNT(*) FILTER (WHERE vote_type = 'UPVOTE') AS upvotes, COUNT(*) FILTER (WHERE vote_type = 'DOWNVOTE') AS downvotes").
		Group("post_id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
