package model

import (
	"time"

	"github.com/google/uuid"
)

type CommunityPost struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId            uuid.UUID `gorm:"type:uuid;not null;index"`
	AnonymousUsername string    `gorm:"type:varchar(100);not null"`
	Content           string    `gorm:"type:text;not null"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
}

func (CommunityPost) TableName() string {
	return "community_posts"
}

type CommunityVote struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PostId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_community_votes_post_user,priority:1"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_community_votes_post_user,priority:2"`
	VoteType  string    `gorm:"type:varchar(10);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (CommunityVote) TableName() string {
	return "community_votes"
}
