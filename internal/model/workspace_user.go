package model

import (
	"time"

	"github.com/google/uuid"
)

type WorkspaceRole string

// Workspace roles ordered by privilege. The permission table is flat:
// Admin does not inherit Owner-only rights.
const (
	RoleOwner  WorkspaceRole = "owner"
	RoleAdmin  WorkspaceRole = "admin"
	RoleMember WorkspaceRole = "member"
	RoleGuest  WorkspaceRole = "guest"
)

func (r WorkspaceRole) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember, RoleGuest:
		return true
	}
	return false
}

// WorkspaceUser is a membership row. At most one active row exists per
// (workspace, user) pair; removal flips IsActive.
type WorkspaceUser struct {
	ID          uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	WorkspaceID uuid.UUID     `gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID     `gorm:"type:uuid;not null;index"`
	Role        WorkspaceRole `gorm:"type:text;not null;check:role IN ('owner', 'admin', 'member', 'guest')"`
	JoinedAt    time.Time     `gorm:"autoCreateTime"`
	InvitedAt   *time.Time
	IsActive    bool `gorm:"not null;default:true"`

	Workspace Workspace `gorm:"foreignKey:WorkspaceID"`
	User      User      `gorm:"foreignKey:UserID"`
}
