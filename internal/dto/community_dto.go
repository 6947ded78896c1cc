package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePostRequest struct {
	Content string `json:"content" validate:"required"`
}

type PostResponse struct {
	Id                uuid.UUID `json:"id"`
	AnonymousUsername string    `json:"anonymous_username"`
	Content           string    `json:"content"`
	Upvotes           int64     `json:"upvotes"`
	Downvotes         int64     `json:"downvotes"`
	CreatedAt         time.Time `json:"created_at"`
}

type VoteRequest struct {
	VoteType string `json:"vote_type" validate:"required,oneof=UPVOTE DOWNVOTE"`
}

type VoteResponse struct {
	Status string `json:"status"` // "added", "removed" or "changed"
}
