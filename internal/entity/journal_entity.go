package entity

import (
	"time"

	"github.com/google/uuid"
)

type JournalEntry struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Title     *string
	Content   string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}
