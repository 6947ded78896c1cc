package contract

import (
	"context"

	"luma-companion-be/internal/entity"
	"luma-companion-be/internal/repository/specification"
)

type MoodEntryRepository interface {
	Create(ctx context.Context, entry *entity.MoodEntry) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MoodEntry, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MoodEntry, error)
}
