package service

import (
	"testing"
	"time"

	"luma-companion-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestShouldSendToday(t *testing.T) {
	tests := []struct {
		name      string
		frequency entity.ReminderFrequency
		day       time.Weekday
		want      bool
	}{
		{name: "daily on monday", frequency: entity.ReminderFrequencyDaily, day: time.Monday, want: true},
		{name: "daily on sunday", frequency: entity.ReminderFrequencyDaily, day: time.Sunday, want: true},
		{name: "weekdays on wednesday", frequency: entity.ReminderFrequencyWeekdays, day: time.Wednesday, want: true},
		{name: "weekdays on friday", frequency: entity.ReminderFrequencyWeekdays, day: time.Friday, want: true},
		{name: "weekdays on saturday", frequency: entity.ReminderFrequencyWeekdays, day: time.Saturday, want: false},
		{name: "weekdays on sunday", frequency: entity.ReminderFrequencyWeekdays, day: time.Sunday, want: false},
		{name: "weekends on saturday", frequency: entity.ReminderFrequencyWeekends, day: time.Saturday, want: true},
		{name: "weekends on sunday", frequency: entity.ReminderFrequencyWeekends, day: time.Sunday, want: true},
		{name: "weekends on tuesday", frequency: entity.ReminderFrequencyWeekends, day: time.Tuesday, want: false},
		{name: "weekly on monday", frequency: entity.ReminderFrequencyWeekly, day: time.Monday, want: true},
		{name: "weekly on thursday", frequency: entity.ReminderFrequencyWeekly, day: time.Thursday, want: false},
		{name: "weekly on sunday", frequency: entity.ReminderFrequencyWeekly, day: time.Sunday, want: false},
		{name: "unknown frequency defaults to send", frequency: entity.ReminderFrequency("hourly"), day: time.Tuesday, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldSendToday(tt.frequency, tt.day))
		})
	}
}
