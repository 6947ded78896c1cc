package contract

import (
	"context"

	"luma-companion-be/internal/entity"
	"luma-companion-be/internal/repository/specification"

	"github.com/google/uuid"
)

// VoteCount aggregates votes per post.
type VoteCount struct {
	PostId    uuid.UUID
	Upvotes   int64
	Downvotes int64
}

type CommunityPostRepository interface {
	Create(ctx context.Context, post *entity.CommunityPost) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CommunityPost, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CommunityPost, error)
}

type CommunityVoteRepository interface {
	Create(ctx context.Context, vote *entity.CommunityVote) error
	Update(ctx context.Context, vote *entity.CommunityVote) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CommunityVote, error)
	CountByPost(ctx context.Context) ([]VoteCount, error)
}
