package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendMotivationRequest struct {
	ReceiverId uuid.UUID `json:"receiver_id" validate:"required"`
	SenderName string    `json:"sender_name" validate:"required"`
	GoalText   string    `json:"goal_text" validate:"required"`
	Note       *string   `json:"note,omitempty"`
}

type MotivationResponse struct {
	Id         uuid.UUID `json:"id"`
	SenderName string    `json:"sender_name"`
	GoalText   string    `json:"goal_text"`
	Note       *string   `json:"note,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
