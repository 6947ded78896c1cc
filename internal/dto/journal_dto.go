package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateJournalRequest struct {
	Title   *string  `json:"title,omitempty"`
	Content string   `json:"content" validate:"required"`
	Tags    []string `json:"tags,omitempty"`
}

type JournalEntryResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     *string   `json:"title,omitempty"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
