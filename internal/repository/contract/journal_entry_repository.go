package contract

import (
	"context"

	"luma-companion-be/internal/entity"
	"luma-companion-be/internal/repository/specification"
)

type JournalEntryRepository interface {
	Create(ctx context.Context, entry *entity.JournalEntry) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.JournalEntry, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.JournalEntry, error)
}
