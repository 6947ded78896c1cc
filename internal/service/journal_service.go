package service

import (
	"context"
	"time"

	"luma-companion-be/internal/dto"
	"luma-companion-be/internal/entity"
	"luma-companion-be/internal/pkg/logger"
	"luma-companion-be/internal/repository/specification"
	"luma-companion-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IJournalService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateJournalRequest) (*dto.JournalEntryResponse, error)
	GetEntries(ctx context.Context, userId uuid.UUID) ([]*dto.JournalEntryResponse, error)
}

type journalService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	log        logger.ILogger
}

func NewJournalService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService, log logger.ILogger) IJournalService {
	return &journalService{
		uowFactory: uowFactory,
		publisher:  publisher,
		log:        log,
	}
}

func journalEntryResponse(entry *entity.JournalEntry) *dto.JournalEntryResponse {
	return &dto.JournalEntryResponse{
		Id:        entry.Id,
		Title:     entry.Title,
		Content:   entry.Content,
		Tags:      entry.Tags,
		CreatedAt: entry.CreatedAt,
	}
}

func (s *journalService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateJournalRequest) (*dto.JournalEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry := &entity.JournalEntry{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     req.Title,
		Content:   req.Content,
		Tags:      req.Tags,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uow.JournalEntryRepository().Create(ctx, entry); err != nil {
		return nil, err
	}

	// Indexing happens asynchronously; a failed publish only costs the
	// entry its retrieval context.
	embedMsg := &dto.JournalEmbedMessage{
		UserId:    userId,
		JournalId: entry.Id,
		Content:   entry.Content,
	}
	if err := s.publisher.PublishJournalEmbed(ctx, embedMsg); err != nil {
		s.log.Warn("journal", "failed to publish embed message", map[string]interface{}{
			"journal_id": entry.Id.String(),
			"error":      err.Error(),
		})
	}

	return journalEntryResponse(entry), nil
}

func (s *journalService) GetEntries(ctx context.Context, userId uuid.UUID) ([]*dto.JournalEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entries, err := uow.JournalEntryRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.JournalEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = journalEntryResponse(entry)
	}
	return responses, nil
}
