package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessageRole string

const (
	ChatMessageRoleUser      ChatMessageRole = "user"
	ChatMessageRoleAssistant ChatMessageRole = "assistant"
)

type ChatMessage struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Role      ChatMessageRole
	Content   string
	CreatedAt time.Time
}
