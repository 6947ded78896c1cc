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

type IProfileService interface {
	Get(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type profileService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProfileService(uowFactory unitofwork.RepositoryFactory) IProfileService {
	return &profileService{uowFactory: uowFactory}
}

func profileResponse(p *entity.Profile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		Nickname:          p.Nickname,
		Pronouns:          p.Pronouns,
		Timezone:          p.Timezone,
		Language:          p.Language,
		MedicalConditions: p.MedicalConditions,
		Medications:       p.Medications,
		ComfortLevel:      p.ComfortLevel,
		Goals:             p.Goals,
		CheckinFrequency:  p.CheckinFrequency,
	}
}

func (s *profileService) Get(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return &dto.ProfileResponse{}, nil
	}

	return profileResponse(profile), nil
}

func (s *profileService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	if profile == nil {
		profile = &entity.Profile{
			Id:        uuid.New(),
			UserId:    userId,
			CreatedAt: time.Now(),
		}
		applyProfileUpdate(profile, req)
		profile.UpdatedAt = time.Now()
		if err := uow.ProfileRepository().Create(ctx, profile); err != nil {
			return nil, err
		}
		return profileResponse(profile), nil
	}

	applyProfileUpdate(profile, req)
	profile.UpdatedAt = time.Now()
	if err := uow.ProfileRepository().Update(ctx, profile); err != nil {
		return nil, err
	}

	return profileResponse(profile), nil
}

func applyProfileUpdate(profile *entity.Profile, req *dto.UpdateProfileRequest) {
	profile.Nickname = req.Nickname
	profile.Pronouns = req.Pronouns
	profile.Timezone = req.Timezone
	profile.Language = req.Language
	profile.MedicalConditions = req.MedicalConditions
	profile.Medications = req.Medications
	profile.ComfortLevel = req.ComfortLevel
	profile.Goals = req.Goals
	profile.CheckinFrequency = req.CheckinFrequency
}
