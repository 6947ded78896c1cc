package mapper

import (
	"luma-companion-be/internal/entity"
	"luma-companion-be/internal/model"
)

type CommunityMapper struct{}

func NewCommunityMapper() *CommunityMapper {
	return &CommunityMapper{}
}

// PostToEntity maps a post row. Vote counts live in separate rows and are
// filled in by the caller.
func (m *CommunityMapper) PostToEntity(p *model.CommunityPost) *entity.CommunityPost {
	if p == nil {
		return nil
	}

	return &entity.CommunityPost{
		Id:                p.Id,
		UserId:            p.UserId,
		AnonymousUsername: p.AnonymousUsername,
		Content:           p.Content,
		CreatedAt:         p.CreatedAt,
	}
}

func (m *CommunityMapper) PostToModel(p *entity.CommunityPost) *model.CommunityPost {
	if p == nil {
		return nil
	}

	return &model.CommunityPost{
		Id:                p.Id,
		UserId:            p.UserId,
		AnonymousUsername: p.AnonymousUsername,
		Content:           p.Content,
		CreatedAt:         p.CreatedAt,
	}
}

func (m *CommunityMapper) VoteToEntity(v *model.CommunityVote) *entity.CommunityVote {
	if v == nil {
		return nil
	}

	return &entity.CommunityVote{
		Id:        v.Id,
		PostId:    v.PostId,
		UserId:    v.UserId,
		VoteType:  entity.VoteType(v.VoteType),
		CreatedAt: v.CreatedAt,
	}
}

func (m *CommunityMapper) VoteToModel(v *entity.CommunityVote) *model.CommunityVote {
	if v == nil {
		return nil
	}

	return &model.CommunityVote{
		Id:        v.Id,
		PostId:    v.PostId,
		UserId:    v.UserId,
		VoteType:  string(v.VoteType),
		CreatedAt: v.CreatedAt,
	}
}
