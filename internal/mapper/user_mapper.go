package mapper

import (
	"luma-companion-be/internal/entity"
	"luma-companion-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	return &entity.User{
		Id:                u.Id,
		Email:             u.Email,
		PasswordHash:      u.PasswordHash,
		FullName:          u.FullName,
		AvatarURL:         u.AvatarURL,
		OneSignalPlayerId: u.OneSignalPlayerId,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}

	return &model.User{
		Id:                u.Id,
		Email:             u.Email,
		PasswordHash:      u.PasswordHash,
		FullName:          u.FullName,
		AvatarURL:         u.AvatarURL,
		OneSignalPlayerId: u.OneSignalPlayerId,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

func (m *UserMapper) ProviderToEntity(p *model.UserProvider) *entity.UserProvider {
	if p == nil {
		return nil
	}

	return &entity.UserProvider{
		Id:             p.Id,
		UserId:         p.UserId,
		ProviderName:   p.ProviderName,
		ProviderUserId: p.ProviderUserId,
		AvatarURL:      p.AvatarURL,
		CreatedAt:      p.CreatedAt,
	}
}

func (m *UserMapper) ProviderToModel(p *entity.UserProvider) *model.UserProvider {
	if p == nil {
		return nil
	}

	return &model.UserProvider{
		Id:             p.Id,
		UserId:         p.UserId,
		ProviderName:   p.ProviderName,
		ProviderUserId: p.ProviderUserId,
		AvatarURL:      p.AvatarURL,
		CreatedAt:      p.CreatedAt,
	}
}

func (m *UserMapper) ProfileToEntity(p *model.Profile) *entity.Profile {
	if p == nil {
		return nil
	}

	return &entity.Profile{
		Id:                p.Id,
		UserId:            p.UserId,
		Nickname:          p.Nickname,
		Pronouns:          p.Pronouns,
		Timezone:          p.Timezone,
		Language:          p.Language,
		MedicalConditions: p.MedicalConditions,
		Medications:       p.Medications,
		ComfortLevel:      p.ComfortLevel,
		Goals:             p.Goals,
		CheckinFrequency:  p.CheckinFrequency,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (m *UserMapper) ProfileToModel(p *entity.Profile) *model.Profile {
	if p == nil {
		return nil
	}

	return &model.Profile{
		Id:                p.Id,
		UserId:            p.UserId,
		Nickname:          p.Nickname,
		Pronouns:          p.Pronouns,
		Timezone:          p.Timezone,
		Language:          p.Language,
		MedicalConditions: p.MedicalConditions,
		Medications:       p.Medications,
		ComfortLevel:      p.ComfortLevel,
		Goals:             p.Goals,
		CheckinFrequency:  p.CheckinFrequency,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
