package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskList is an ordered grouping of tasks inside a project. Order is max+1 of its
// siblings at creation time and is not compacted after deletions.
type TaskList struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name        string    `gorm:"not null"`
	Description string
	Color       string
	ProjectID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Order       int       `gorm:"column:sort_order;not null"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Project Project `gorm:"foreignKey:ProjectID"`
}
