package mapper

import (
	"luma-companion-be/internal/entity"
	"luma-companion-be/internal/model"
)

type ReminderMapper struct{}

func NewReminderMapper() *ReminderMapper {
	return &ReminderMapper{}
}

func (m *ReminderMapper) ToEntity(r *model.Reminder) *entity.Reminder {
	if r == nil {
		return nil
	}

	return &entity.Reminder{
		Id:            r.Id,
		UserId:        r.UserId,
		GoalId:        r.GoalId,
		GoalText:      r.GoalText,
		Time:          r.Time,
		Frequency:     entity.ReminderFrequency(r.Frequency),
		CustomMessage: r.CustomMessage,
		AddToCalendar: r.AddToCalendar,
		Active:        r.Active,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func (m *ReminderMapper) ToModel(r *entity.Reminder) *model.Reminder {
	if r == nil {
		return nil
	}

	return &model.Reminder{
		Id:            r.Id,
		UserId:        r.UserId,
		GoalId:        r.GoalId,
		GoalText:      r.GoalText,
		Time:          r.Time,
		Frequency:     string(r.Frequency),
		CustomMessage: r.CustomMessage,
		AddToCalendar: r.AddToCalendar,
		Active:        r.Active,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
