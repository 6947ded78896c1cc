package dto

import (
	"time"

	"luma-companion-be/pkg/rag/prompt"

	"github.com/google/uuid"
)

type SendChatRequest struct {
	Message         string                  `json:"message" validate:"required"`
	SessionId       *uuid.UUID              `json:"session_id,omitempty"`
	SaveToDb        bool                    `json:"save_to_db"`
	EmotionAnalysis *prompt.EmotionAnalysis `json:"emotion_analysis,omitempty"`
}

type SendChatResponse struct {
	Result    string    `json:"result"`
	SessionId uuid.UUID `json:"session_id"`
}

type ChatSessionResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type ChatMessageResponse struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type CheckinResponse struct {
	Message        string    `json:"message"`
	CheckinMessage string    `json:"checkin_message"`
	SessionId      uuid.UUID `json:"session_id"`
}
