package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MoodEntry struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID      `gorm:"type:uuid;not null;index:idx_mood_entries_user_created,priority:1"`
	Mood      string         `gorm:"type:varchar(100);not null"`
	Notes     *string        `gorm:"type:text"`
	Factors   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index:idx_mood_entries_user_created,priority:2"`
}

func (MoodEntry) TableName() string {
	return "mood_entries"
}
