package handler

import (
	"context"
	"net/http"

	"taskhub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SubtaskService interface {
	ListForTask(ctx context.Context, taskID uuid.UUID) ([]service.SubtaskDto, error)
	Create(ctx context.Context, taskID uuid.UUID, title string) (*service.SubtaskDto, error)
	Toggle(ctx context.Context, id uuid.UUID) (*service.SubtaskDto, error)
	Update(ctx context.Context, id uuid.UUID, title string) (*service.SubtaskDto, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var _ SubtaskService = (*service.SubtaskService)(nil)

type SubtaskHandler struct {
	subtasks SubtaskService
}

func NewSubtaskHandler(subtasks SubtaskService) *SubtaskHandler {
	return &SubtaskHandler{subtasks: subtasks}
}

type CreateSubtaskRequest struct {
	TaskID uuid.UUID `json:"task_id" binding:"required"`
	Title  string    `json:"title" binding:"required"`
}

type UpdateSubtaskRequest struct {
	Title string `json:"title" binding:"required"`
}

func (h *SubtaskHandler) Create(c *gin.Context) {
	var req CreateSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subtask, err := h.subtasks.Create(c.Request.Context(), req.TaskID, req.Title)
	if err != nil {
		apiError(c, err)
		return
	}
	apiOK(c, subtask, "Subtask created")
}

func (h *SubtaskHandler) Toggle(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	subtask, err := h.subtasks.Toggle(c.Request.Context(), id)
	if err != nil {
		apiError(c, err)
		return
	}
	apiOK(c, subtask, "Subtask toggled")
}

func (h *SubtaskHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subtask, err := h.subtasks.Update(c.Request.Context(), id, req.Title)
	if err != nil {
		apiError(c, err)
		return
	}
	apiOK(c, subtask, "Subtask updated")
}

func (h *SubtaskHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.subtasks.Delete(c.Request.Context(), id); err != nil {
		apiError(c, err)
		return
	}
	apiOK(c, nil, "Subtask deleted")
}
