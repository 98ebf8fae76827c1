package model

import (
	"time"

	"github.com/google/uuid"
)

// Attachment stores the path relative to the upload root, never an
// absolute filesystem path.
type Attachment struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	FileName     string    `gorm:"not null"`
	FilePath     string    `gorm:"not null"`
	FileType     string    `gorm:"not null"`
	FileSize     int64     `gorm:"not null"`
	TaskID       uuid.UUID `gorm:"type:uuid;not null;index"`
	UploadedByID uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`

	Task       Task `gorm:"foreignKey:TaskID"`
	UploadedBy User `gorm:"foreignKey:UploadedByID"`
}
