package model

import (
	"time"

	"github.com/google/uuid"
)

type Subtask struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Title       string    `gorm:"not null"`
	TaskID      uuid.UUID `gorm:"type:uuid;not null;index"`
	IsCompleted bool      `gorm:"not null;default:false"`
	CompletedAt *time.Time
	Order       int       `gorm:"column:sort_order;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`

	Task Task `gorm:"foreignKey:TaskID"`
}
