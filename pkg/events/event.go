package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "reminder.due").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

const (
	TypeReminderDue    = "reminder.due"
	TypeMotivationSent = "motivation.sent"
	TypeUserRegistered = "user.registered"
)

// ReminderDue is published when a goal reminder fires.
func ReminderDue(userId, goalId, goalText, message string) Event {
	return BaseEvent{
		Type: TypeReminderDue,
		Data: map[string]interface{}{
			"user_id":   userId,
			"goal_id":   goalId,
			"goal_text": goalText,
			"message":   message,
		},
		OccurredAt: time.Now(),
	}
}

// MotivationSent is published when someone cheers on a user's goal.
func MotivationSent(userId, senderName, goalText, note string) Event {
	return BaseEvent{
		Type: TypeMotivationSent,
		Data: map[string]interface{}{
			"user_id":     userId,
			"sender_name": senderName,
			"goal_text":   goalText,
			"note":        note,
		},
		OccurredAt: time.Now(),
	}
}

// UserRegistered is published after a successful signup.
func UserRegistered(userId, email string) Event {
	return BaseEvent{
		Type: TypeUserRegistered,
		Data: map[string]interface{}{
			"user_id": userId,
			"email":   email,
		},
		OccurredAt: time.Now(),
	}
}
