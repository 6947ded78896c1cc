package model

import (
	"time"

	"github.com/google/uuid"
)

type Motivation struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ReceiverId uuid.UUID `gorm:"type:uuid;not null;index"`
	SenderName string    `gorm:"type:varchar(255);not null"`
	GoalText   string    `gorm:"type:text;not null"`
	Note       *string   `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (Motivation) TableName() string {
	return "motivations"
}
