package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReminderFrequency string

const (
	ReminderFrequencyDaily    ReminderFrequency = "daily"
	ReminderFrequencyWeekdays ReminderFrequency = "weekdays"
	ReminderFrequencyWeekends ReminderFrequency = "weekends"
	ReminderFrequencyWeekly   ReminderFrequency = "weekly"
)

type Reminder struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	GoalId        string
	GoalText      string
	Time          string // HH:MM, 24h
	Frequency     ReminderFrequency
	CustomMessage *string
	AddToCalendar bool
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
