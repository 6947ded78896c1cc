package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type JournalEntry struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title     *string        `gorm:"type:varchar(255)"`
	Content   string         `gorm:"type:text;not null"`
	Tags      datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}
