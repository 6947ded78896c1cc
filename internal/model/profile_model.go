package model

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Nickname          string    `gorm:"type:varchar(100)"`
	Pronouns          string    `gorm:"type:varchar(50)"`
	Timezone          string    `gorm:"type:varchar(100)"`
	Language          string    `gorm:"type:varchar(50)"`
	MedicalConditions string    `gorm:"type:text"`
	Medications       string    `gorm:"type:text"`
	ComfortLevel      int       `gorm:"default:3"`
	Goals             string    `gorm:"type:text"`
	CheckinFrequency  string    `gorm:"type:varchar(50)"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

func (Profile) TableName() string {
	return "profiles"
}
