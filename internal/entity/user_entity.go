package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id                uuid.UUID
	Email             string
	PasswordHash      *string
	FullName          string
	AvatarURL         *string
	OneSignalPlayerId *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type UserProvider struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	ProviderName   string
	ProviderUserId string
	AvatarURL      string
	CreatedAt      time.Time
}

type Profile struct {
	Id                uuid.UUID
	UserId            uuid.UUID
	Nickname          string
	Pronouns          string
	Timezone          string
	Language          string
	MedicalConditions string
	Medications       string
	ComfortLevel      int
	Goals             string
	CheckinFrequency  string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
