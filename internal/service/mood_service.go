package service

import (
	"context"
	"time"

	"luma-companion-be/internal/dto"
	"luma-companion-be/internal/entity"
	"luma-companion-be/internal/repository/specification"
	"luma-companion-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IMoodService interface {
	LogMood(ctx context.Context, userId uuid.UUID, req *dto.LogMoodRequest) (*dto.MoodEntryResponse, error)
	GetEntries(ctx context.Context, userId uuid.UUID) ([]*dto.MoodEntryResponse, error)
}

type moodService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewMoodService(uowFactory unitofwork.RepositoryFactory) IMoodService {
	return &moodService{uowFactory: uowFactory}
}

func moodEntryResponse(entry *entity.MoodEntry) *dto.MoodEntryResponse {
	return &dto.MoodEntryResponse{
		Id:        entry.Id,
		Mood:      entry.Mood,
		Notes:     entry.Notes,
		Factors:   entry.Factors,
		CreatedAt: entry.CreatedAt,
	}
}

func (s *moodService) LogMood(ctx context.Context, userId uuid.UUID, req *dto.LogMoodRequest) (*dto.MoodEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry := &entity.MoodEntry{
		Id:        uuid.New(),
		UserId:    userId,
		Mood:      req.Mood,
		Notes:     req.Notes,
		Factors:   req.Factors,
		CreatedAt: time.Now(),
	}

	if err := uow.MoodEntryRepository().Create(ctx, entry); err != nil {
		return nil, err
	}

	return moodEntryResponse(entry), nil
}

func (s *moodService) GetEntries(ctx context.Context, userId uuid.UUID) ([]*dto.MoodEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	weekAgo := time.Now().AddDate(0, 0, -7)
	entries, err := uow.MoodEntryRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.CreatedSince{Since: weekAgo},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.MoodEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = moodEntryResponse(entry)
	}
	return responses, nil
}
