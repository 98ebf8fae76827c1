package service

import (
	"context"
	"fmt"
	"time"

	"taskhub/internal/model"

	"github.com/google/uuid"
)

type WorkspaceService struct {
	workspaces    WorkspaceRepository
	members       WorkspaceUserRepository
	users         UserRepository
	activity      ActivityLogRepository
	notifications NotificationRepository
}

func NewWorkspaceService(
	workspaces WorkspaceRepository,
	members WorkspaceUserRepository,
	users UserRepository,
	activity ActivityLogRepository,
	notifications NotificationRepository,
) *WorkspaceService {
	return &WorkspaceService{
		workspaces:    workspaces,
		members:       members,
		users:         users,
		activity:      activity,
		notifications: notifications,
	}
}

func (s *WorkspaceService) Get(ctx context.Context, id uuid.UUID) (*WorkspaceDto, error) {
	workspace, err := s.workspaces.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	members, err := s.members.GetMembers(ctx, id)
	if err != nil {
		return nil, err
	}

	return mapWorkspaceToDto(workspace, len(members)), nil
}

func (s *WorkspaceService) ListForUser(ctx context.Context, userID uuid.UUID) ([]WorkspaceDto, error) {
	workspaces, err := s.workspaces.GetForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	dtos := make([]WorkspaceDto, len(workspaces))
	for i := range workspaces {
		members, err := s.members.GetMembers(ctx, workspaces[i].ID)
		if err != nil {
			return nil, err
		}
		dtos[i] = *mapWorkspaceToDto(&workspaces[i], len(members))
	}
	return dtos, nil
}

// Create makes the caller the workspace owner and auto-adds them as the
// first member with the Owner role.
func (s *WorkspaceService) Create(ctx context.Context, input CreateWorkspaceInput, ownerID uuid.UUID) (*WorkspaceDto, error) {
	if input.Name == "" {
		return nil, Invalid("Workspace name is required")
	}

	workspace := &model.Workspace{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Color:       input.Color,
		OwnerID:     ownerID,
		IsActive:    true,
	}

	if err := s.workspaces.Create(ctx, workspace); err != nil {
		return nil, err
	}

	if err := s.members.Add(ctx, &model.WorkspaceUser{
		ID:          uuid.New(),
		WorkspaceID: workspace.ID,
		UserID:      ownerID,
		Role:        model.RoleOwner,
		IsActive:    true,
	}); err != nil {
		return nil, err
	}

	if err := s.activity.Create(ctx, &model.ActivityLog{
		Type:        model.ActivityCreated,
		Description: fmt.Sprintf("Created workspace '%s'", workspace.Name),
		UserID:      ownerID,
		WorkspaceID: &workspace.ID,
	}); err != nil {
		return nil, err
	}

	return mapWorkspaceToDto(workspace, 1), nil
}

func (s *WorkspaceService) Update(ctx context.Context, id uuid.UUID, input UpdateWorkspaceInput, actorID uuid.UUID) (*WorkspaceDto, error) {
	workspace, err := s.workspaces.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if workspace.OwnerID != actorID {
		return nil, Forbidden("Only owner can update workspace")
	}

	workspace.Name = input.Name
	workspace.Description = input.Description
	workspace.Color = input.Color
	workspace.UpdatedAt = time.Now()

	if err := s.workspaces.Update(ctx, workspace); err != nil {
		return nil, err
	}

	if err := s.activity.Create(ctx, &model.ActivityLog{
		Type:        model.ActivityUpdated,
		Description: "Updated workspace",
		UserID:      actorID,
		WorkspaceID: &id,
	}); err != nil {
		return nil, err
	}

	members, err := s.members.GetMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapWorkspaceToDto(workspace, len(members)), nil
}

func (s *WorkspaceService) Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error {
	workspace, err := s.workspaces.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if workspace.OwnerID != actorID {
		return Forbidden("Only owner can delete workspace")
	}

	if err := s.workspaces.SoftDelete(ctx, id); err != nil {
		return err
	}

	return s.activity.Create(ctx, &model.ActivityLog{
		Type:        model.ActivityDeleted,
		Description: "Deleted workspace",
		UserID:      actorID,
		WorkspaceID: &id,
	})
}

func (s *WorkspaceService) Members(ctx context.Context, workspaceID uuid.UUID) ([]WorkspaceMemberDto, error) {
	if _, err := s.workspaces.GetByID(ctx, workspaceID); err != nil {
		return nil, err
	}

	members, err := s.members.GetMembers(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	dtos := make([]WorkspaceMemberDto, len(members))
	for i, m := range members {
		dtos[i] = WorkspaceMemberDto{
			ID:          m.ID,
			WorkspaceID: m.WorkspaceID,
			UserID:      m.UserID,
			UserEmail:   m.User.Email,
			UserName:    m.User.FullName(),
			Role:        m.Role,
			JoinedAt:    m.JoinedAt,
		}
	}
	return dtos, nil
}

// Invite adds an existing user to the workspace. Only owners and admins
// may invite; re-inviting an active member is rejected.
func (s *WorkspaceService) Invite(ctx context.Context, workspaceID uuid.UUID, input InviteUserInput, actorID uuid.UUID) error {
	workspace, err := s.workspaces.GetByID(ctx, workspaceID)
	if err != nil {
		return err
	}

	if workspace.OwnerID != actorID {
		requester, err := s.members.GetByWorkspaceAndUser(ctx, workspaceID, actorID)
		if err != nil {
			return err
		}
		if requester == nil || (requester.Role != model.RoleOwner && requester.Role != model.RoleAdmin) {
			return Forbidden("Only owners and admins can invite users")
		}
	}

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return Invalid("User not found")
	}

	existing, err := s.members.GetByWorkspaceAndUser(ctx, workspaceID, user.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		return Invalid("User is already a member")
	}

	role := input.Role
	if role == "" {
		role = model.RoleMember
	}
	if !role.Valid() {
		return Invalid("Invalid role")
	}

	now := time.Now()
	if err := s.members.Add(ctx, &model.WorkspaceUser{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		UserID:      user.ID,
		Role:        role,
		InvitedAt:   &now,
		IsActive:    true,
	}); err != nil {
		return err
	}

	return s.notifications.Create(ctx, &model.Notification{
		Title:   "Added to workspace",
		Message: fmt.Sprintf("You were added to workspace '%s'", workspace.Name),
		UserID:  user.ID,
	})
}

func (s *WorkspaceService) RemoveMember(ctx context.Context, workspaceID, memberID uuid.UUID, actorID uuid.UUID) error {
	workspace, err := s.workspaces.GetByID(ctx, workspaceID)
	if err != nil {
		return err
	}

	if workspace.OwnerID != actorID {
		return Forbidden("Only owner can remove users")
	}

	member, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		return err
	}
	if member.WorkspaceID != workspaceID {
		return Invalid("Member does not belong to this workspace")
	}

	return s.members.Remove(ctx, memberID)
}

func (s *WorkspaceService) UpdateMemberRole(ctx context.Context, workspaceID, memberID uuid.UUID, role model.WorkspaceRole, actorID uuid.UUID) error {
	member, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		return err
	}
	if member.WorkspaceID != workspaceID {
		return Invalid("Member does not belong to this workspace")
	}

	requester, err := s.members.GetByWorkspaceAndUser(ctx, workspaceID, actorID)
	if err != nil {
		return err
	}
	if requester == nil || requester.Role != model.RoleOwner {
		return Forbidden("Only owner can change roles")
	}

	if !role.Valid() {
		return Invalid("Invalid role")
	}

	member.Role = role
	return s.members.Update(ctx, member)
}

func mapWorkspaceToDto(workspace *model.Workspace, memberCount int) *WorkspaceDto {
	return &WorkspaceDto{
		ID:          workspace.ID,
		Name:        workspace.Name,
		Description: workspace.Description,
		Color:       workspace.Color,
		OwnerID:     workspace.OwnerID,
		MemberCount: memberCount,
		CreatedAt:   workspace.CreatedAt,
	}
}
