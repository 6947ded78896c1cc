package dto

import "github.com/google/uuid"

// JournalEmbedMessage is the payload carried on the async embedding topic.
type JournalEmbedMessage struct {
	UserId    uuid.UUID `json:"user_id"`
	JournalId uuid.UUID `json:"journal_id"`
	Content   string    `json:"content"`
}
