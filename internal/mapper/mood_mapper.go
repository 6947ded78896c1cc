package mapper

import (
	"encoding/json"

	"luma-companion-be/internal/entity"
	"luma-companion-be/internal/model"

	"gorm.io/datatypes"
)

type MoodMapper struct{}

func NewMoodMapper() *MoodMapper {
	return &MoodMapper{}
}

func (m *MoodMapper) ToEntity(e *model.MoodEntry) *entity.MoodEntry {
	if e == nil {
		return nil
	}

	var factors []string
	if len(e.Factors) > 0 {
		// Malformed stored JSON yields no factors rather than an error.
		_ = json.Unmarshal(e.Factors, &factors)
	}

	return &entity.MoodEntry{
		Id:        e.Id,
		UserId:    e.UserId,
		Mood:      e.Mood,
		Notes:     e.Notes,
		Factors:   factors,
		CreatedAt: e.CreatedAt,
	}
}

func (m *MoodMapper) ToModel(e *entity.MoodEntry) *model.MoodEntry {
	if e == nil {
		return nil
	}

	var factors datatypes.JSON
	if len(e.Factors) > 0 {
		raw, err := json.Marshal(e.Factors)
		if err == nil {
			factors = raw
		}
	}

	return &model.MoodEntry{
		Id:        e.Id,
		UserId:    e.UserId,
		Mood:      e.Mood,
		Notes:     e.Notes,
		Factors:   factors,
		CreatedAt: e.CreatedAt,
	}
}
