package specification

import "gorm.io/gorm"

type ByGoalID struct {
	GoalID string
}

func (s ByGoalID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("goal_id = ?", s.GoalID)
}

type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("active = ?", true)
}

type ByReminderTime struct {
	Time string // HH:MM
}

func (s ByReminderTime) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("time = ?", s.Time)
}
