package model

import (
	"time"

	"github.com/google/uuid"
)

type Reminder struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reminders_user_goal,priority:1"`
	GoalId        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_reminders_user_goal,priority:2"`
	GoalText      string    `gorm:"type:text;not null"`
	Time          string    `gorm:"type:varchar(5);not null"`
	Frequency     string    `gorm:"type:varchar(20);not null"`
	CustomMessage *string   `gorm:"type:text"`
	AddToCalendar bool      `gorm:"default:false"`
	Active        bool      `gorm:"default:true;index"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Reminder) TableName() string {
	return "reminders"
}
