package entity

import (
	"time"

	"github.com/google/uuid"
)

type VoteType string

const (
	VoteTypeUpvote   VoteType = "UPVOTE"
	VoteTypeDownvote VoteType = "DOWNVOTE"
)

type CommunityPost struct {
	Id                uuid.UUID
	UserId            uuid.UUID
	AnonymousUsername string
	Content           string
	Upvotes           int64
	Downvotes         int64
	CreatedAt         time.Time
}

type CommunityVote struct {
	Id        uuid.UUID
	PostId    uuid.UUID
	UserId    uuid.UUID
	VoteType  VoteType
	CreatedAt time.Time
}
