package mapper

import (
	"luma-companion-be/internal/entity"
	"luma-companion-be/internal/model"
)

type MotivationMapper struct{}

func NewMotivationMapper() *MotivationMapper {
	return &MotivationMapper{}
}

func (m *MotivationMapper) ToEntity(mo *model.Motivation) *entity.Motivation {
	if mo == nil {
		return nil
	}

	return &entity.Motivation{
		Id:         mo.Id,
		ReceiverId: mo.ReceiverId,
		SenderName: mo.SenderName,
		GoalText:   mo.GoalText,
		Note:       mo.Note,
		CreatedAt:  mo.CreatedAt,
	}
}

func (m *MotivationMapper) ToModel(mo *entity.Motivation) *model.Motivation {
	if mo == nil {
		return nil
	}

	return &model.Motivation{
		Id:         mo.Id,
		ReceiverId: mo.ReceiverId,
		SenderName: mo.SenderName,
		GoalText:   mo.GoalText,
		Note:       mo.Note,
		CreatedAt:  mo.CreatedAt,
	}
}
