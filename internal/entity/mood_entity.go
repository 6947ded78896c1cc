package entity

import (
	"time"

	"github.com/google/uuid"
)

type MoodEntry struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Mood      string
	Notes     *string
	Factors   []string
	CreatedAt time.Time
}
