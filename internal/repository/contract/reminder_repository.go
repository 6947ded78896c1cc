package contract

import (
	"context"

	"luma-companion-be/internal/entity"
	"luma-companion-be/internal/repository/specification"
)

type ReminderRepository interface {
	Create(ctx context.Context, reminder *entity.Reminder) error
	Update(ctx context.Context, reminder *entity.Reminder) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Reminder, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Reminder, error)
}
