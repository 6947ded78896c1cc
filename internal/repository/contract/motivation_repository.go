package contract

import (
	"context"

	"luma-companion-be/internal/entity"
	"luma-companion-be/internal/repository/specification"
)

type MotivationRepository interface {
	Create(ctx context.Context, motivation *entity.Motivation) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Motivation, error)
}
