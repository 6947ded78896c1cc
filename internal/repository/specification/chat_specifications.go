package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BySessionID struct {
	SessionID uuid.UUID
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

type TitleStartsWith struct {
	Prefix string
}

func (s TitleStartsWith) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title LIKE ?", s.Prefix+"%")
}
