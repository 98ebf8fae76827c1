package model

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Title     string    `gorm:"not null"`
	Message   string
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	TaskID    *uuid.UUID `gorm:"type:uuid"`
	ProjectID *uuid.UUID `gorm:"type:uuid"`
	IsRead    bool       `gorm:"not null;default:false"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	ReadAt    *time.Time

	User User `gorm:"foreignKey:UserID"`
}
