package handler

import (
	"context"
	"net/http"

	"taskhub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaskListService interface {
	Get(ctx context.Context, id uuid.UUID) (*service.TaskListDto, error)
	ListForProject(ctx context.Context, projectID uuid.UUID) ([]service.TaskListDto, error)
	Create(ctx context.Context, input service.CreateTaskListInput, actorID uuid.UUID) (*service.TaskListDto, error)
	Update(ctx context.Context, id uuid.UUID, input service.UpdateTaskListInput, actorID uuid.UUID) (*service.TaskListDto, error)
	Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error
}

var _ TaskListService = (*service.TaskListService)(nil)

type TaskListHandler struct {
	lists TaskListService
}

func NewTaskListHandler(lists TaskListService) *TaskListHandler {
	return &TaskListHandler{lists: lists}
}

type CreateTaskListRequest struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	ProjectID   uuid.UUID `json:"project_id" binding:"required"`
}

type UpdateTaskListRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

func (h *TaskListHandler) Create(c *gin.Context) {
	var req CreateTaskListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := h.lists.Create(c.Request.Context(), service.CreateTaskListInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		ProjectID:   req.ProjectID,
	}, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, list)
}

func (h *TaskListHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	list, err := h.lists.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *TaskListHandler) GetByProject(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	lists, err := h.lists.ListForProject(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lists)
}

func (h *TaskListHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateTaskListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := h.lists.Update(c.Request.Context(), id, service.UpdateTaskListInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	}, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *TaskListHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.lists.Delete(c.Request.Context(), id, currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "List deleted"})
}
