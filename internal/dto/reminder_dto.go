package dto

import (
	"time"

	"github.com/google/uuid"
)

type ReminderSettings struct {
	Time          string  `json:"time" validate:"required,len=5"`
	Frequency     string  `json:"frequency" validate:"required,oneof=daily weekdays weekends weekly"`
	CustomMessage *string `json:"custom_message,omitempty"`
	AddToCalendar bool    `json:"add_to_calendar"`
}

type UpsertReminderRequest struct {
	GoalId   string           `json:"goal_id" validate:"required"`
	GoalText string           `json:"goal_text" validate:"required"`
	Reminder ReminderSettings `json:"reminder" validate:"required"`
}

type ReminderResponse struct {
	Id            uuid.UUID `json:"id"`
	GoalId        string    `json:"goal_id"`
	GoalText      string    `json:"goal_text"`
	Time          string    `json:"time"`
	Frequency     string    `json:"frequency"`
	CustomMessage *string   `json:"custom_message,omitempty"`
	AddToCalendar bool      `json:"add_to_calendar"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
}

type CheckRemindersResponse struct {
	Checked int    `json:"checked"`
	Sent    int    `json:"sent"`
	Time    string `json:"time"`
}
