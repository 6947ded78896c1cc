package dto

import (
	"time"

	"github.com/google/uuid"
)

type LogMoodRequest struct {
	Mood    string   `json:"mood" validate:"required"`
	Notes   *string  `json:"notes,omitempty"`
	Factors []string `json:"factors,omitempty"`
}

type MoodEntryResponse struct {
	Id        uuid.UUID `json:"id"`
	Mood      string    `json:"mood"`
	Notes     *string   `json:"notes,omitempty"`
	Factors   []string  `json:"factors,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
