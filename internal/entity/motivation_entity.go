package entity

import (
	"time"

	"github.com/google/uuid"
)

type Motivation struct {
	Id         uuid.UUID
	ReceiverId uuid.UUID
	SenderName string
	GoalText   string
	Note       *string
	CreatedAt  time.Time
}
