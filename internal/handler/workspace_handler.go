package handler

import (
	"context"
	"net/http"

	"taskhub/internal/model"
	"taskhub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WorkspaceService interface {
	Get(ctx context.Context, id uuid.UUID) (*service.WorkspaceDto, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]service.WorkspaceDto, error)
	Create(ctx context.Context, input service.CreateWorkspaceInput, ownerID uuid.UUID) (*service.WorkspaceDto, error)
	Update(ctx context.Context, id uuid.UUID, input service.UpdateWorkspaceInput, actorID uuid.UUID) (*service.WorkspaceDto, error)
	Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error
	Members(ctx context.Context, workspaceID uuid.UUID) ([]service.WorkspaceMemberDto, error)
	Invite(ctx context.Context, workspaceID uuid.UUID, input service.InviteUserInput, actorID uuid.UUID) error
	RemoveMember(ctx context.Context, workspaceID, memberID uuid.UUID, actorID uuid.UUID) error
	UpdateMemberRole(ctx context.Context, workspaceID, memberID uuid.UUID, role model.WorkspaceRole, actorID uuid.UUID) error
}

var _ WorkspaceService = (*service.WorkspaceService)(nil)

type WorkspaceHandler struct {
	workspaces WorkspaceService
}

func NewWorkspaceHandler(workspaces WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaces: workspaces}
}

type WorkspaceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type InviteMemberRequest struct {
	Email string              `json:"email" binding:"required,email"`
	Role  model.WorkspaceRole `json:"role"`
}

type MemberRoleRequest struct {
	Role model.WorkspaceRole `json:"role" binding:"required"`
}

func (h *WorkspaceHandler) Create(c *gin.Context) {
	var req WorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workspace, err := h.workspaces.Create(c.Request.Context(), service.CreateWorkspaceInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	}, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, workspace)
}

func (h *WorkspaceHandler) GetAll(c *gin.Context) {
	workspaces, err := h.workspaces.ListForUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workspaces)
}

func (h *WorkspaceHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	workspace, err := h.workspaces.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workspace)
}

func (h *WorkspaceHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req WorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workspace, err := h.workspaces.Update(c.Request.Context(), id, service.UpdateWorkspaceInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	}, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workspace)
}

func (h *WorkspaceHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.workspaces.Delete(c.Request.Context(), id, currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workspace deleted"})
}

func (h *WorkspaceHandler) GetMembers(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	members, err := h.workspaces.Members(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

func (h *WorkspaceHandler) InviteMember(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req InviteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.workspaces.Invite(c.Request.Context(), id, service.InviteUserInput{
		Email: req.Email,
		Role:  req.Role,
	}, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User added to workspace"})
}

func (h *WorkspaceHandler) RemoveMember(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	memberID, ok := paramID(c, "member_id")
	if !ok {
		return
	}

	if err := h.workspaces.RemoveMember(c.Request.Context(), id, memberID, currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member removed"})
}

func (h *WorkspaceHandler) UpdateMemberRole(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	memberID, ok := paramID(c, "member_id")
	if !ok {
		return
	}

	var req MemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.workspaces.UpdateMemberRole(c.Request.Context(), id, memberID, req.Role, currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Role updated"})
}
