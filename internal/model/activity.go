package model

import (
	"time"

	"github.com/google/uuid"
)

type ActivityType string

const (
	ActivityCreated         ActivityType = "created"
	ActivityUpdated         ActivityType = "updated"
	ActivityDeleted         ActivityType = "deleted"
	ActivityAssigned        ActivityType = "assigned"
	ActivityUnassigned      ActivityType = "unassigned"
	ActivityStatusChanged   ActivityType = "status_changed"
	ActivityCommentAdded    ActivityType = "comment_added"
	ActivityAttachmentAdded ActivityType = "attachment_added"
)

// ActivityLog is an append-only audit row. Exactly one row is written per
// mutating operation; bulk operations write one per affected task.
type ActivityLog struct {
	ID          uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Type        ActivityType `gorm:"type:text;not null"`
	Description string
	UserID      uuid.UUID  `gorm:"type:uuid;not null"`
	WorkspaceID *uuid.UUID `gorm:"type:uuid;index"`
	ProjectID   *uuid.UUID `gorm:"type:uuid;index"`
	TaskID      *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`

	User User `gorm:"foreignKey:UserID"`
}
