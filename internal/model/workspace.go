package model

import (
	"time"

	"github.com/google/uuid"
)

// Workspace is the top-level tenant container. Deleting a workspace only
// flips IsActive so that child rows keep their foreign keys.
type Workspace struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name        string    `gorm:"not null"`
	Description string
	Color       string
	OwnerID     uuid.UUID `gorm:"type:uuid;not null"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Owner   User            `gorm:"foreignKey:OwnerID"`
	Members []WorkspaceUser `gorm:"foreignKey:WorkspaceID"`
}
