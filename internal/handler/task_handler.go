package handler

import (
	"context"
	"net/http"
	"time"

	"taskhub/internal/model"
	"taskhub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaskService interface {
	Detail(ctx context.Context, id uuid.UUID) (*service.TaskDetailDto, error)
	ListForList(ctx context.Context, listID uuid.UUID) ([]service.TaskDto, error)
	ListForProject(ctx context.Context, projectID uuid.UUID) ([]service.TaskDto, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]service.TaskDto, error)
	Create(ctx context.Context, input service.CreateTaskInput, actorID uuid.UUID) (*service.TaskDto, error)
	Update(ctx context.Context, id uuid.UUID, input service.UpdateTaskInput, actorID uuid.UUID) (*service.TaskDto, error)
	Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.TaskStatus, actorID uuid.UUID) (*service.TaskDto, error)
	UpdatePriority(ctx context.Context, id uuid.UUID, priority model.TaskPriority, actorID uuid.UUID) (*service.TaskDto, error)
	Assign(ctx context.Context, id uuid.UUID, assigneeID *uuid.UUID, actorID uuid.UUID) (*service.TaskDto, error)
	Move(ctx context.Context, id, targetListID uuid.UUID, position int, actorID uuid.UUID) (*service.TaskDto, error)
	Filter(ctx context.Context, filter service.TaskFilter) ([]service.TaskDto, error)
	Stats(ctx context.Context, projectID uuid.UUID) (*service.TaskStatsDto, error)
}

var _ TaskService = (*service.TaskService)(nil)

type TaskHandler struct {
	tasks TaskService
}

func NewTaskHandler(tasks TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

type CreateTaskRequest struct {
	Title        string             `json:"title" binding:"required"`
	Description  string             `json:"description"`
	ListID       uuid.UUID          `json:"list_id" binding:"required"`
	AssignedToID *uuid.UUID         `json:"assigned_to_id"`
	Priority     model.TaskPriority `json:"priority"`
	DueDate      *time.Time         `json:"due_date"`
}

type UpdateTaskRequest struct {
	Title        string             `json:"title" binding:"required"`
	Description  string             `json:"description"`
	Status       model.TaskStatus   `json:"status" binding:"required"`
	Priority     model.TaskPriority `json:"priority" binding:"required"`
	AssignedToID *uuid.UUID         `json:"assigned_to_id"`
	DueDate      *time.Time         `json:"due_date"`
}

type StatusRequest struct {
	Status model.TaskStatus `json:"status" binding:"required"`
}

type PriorityRequest struct {
	Priority model.TaskPriority `json:"priority" binding:"required"`
}

type AssignRequest struct {
	UserID *uuid.UUID `json:"user_id"`
}

type MoveTaskRequest struct {
	ListID   uuid.UUID `json:"list_id" binding:"required"`
	Position int       `json:"position" binding:"required"`
}

type FilterTasksRequest struct {
	ProjectID  uuid.UUID           `json:"project_id" binding:"required"`
	Status     *model.TaskStatus   `json:"status"`
	Priority   *model.TaskPriority `json:"priority"`
	AssigneeID *uuid.UUID          `json:"assignee_id"`
	Search     string              `json:"search"`
	DueFrom    *time.Time          `json:"due_from"`
	DueTo      *time.Time          `json:"due_to"`
}

type BulkStatusRequest struct {
	TaskIDs []uuid.UUID      `json:"task_ids" binding:"required"`
	Status  model.TaskStatus `json:"status" binding:"required"`
}

type BulkPriorityRequest struct {
	TaskIDs  []uuid.UUID        `json:"task_ids" binding:"required"`
	Priority model.TaskPriority `json:"priority" binding:"required"`
}

type BulkAssignRequest struct {
	TaskIDs []uuid.UUID `json:"task_ids" binding:"required"`
	UserID  *uuid.UUID  `json:"user_id"`
}

type bulkResult struct {
	TaskID  uuid.UUID `json:"task_id"`
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), service.CreateTaskInput{
		Title:        req.Title,
		Description:  req.Description,
		ListID:       req.ListID,
		AssignedToID: req.AssignedToID,
		Priority:     req.Priority,
		DueDate:      req.DueDate,
	}, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// GetByID returns the task with its subtasks, comments and attachments.
func (h *TaskHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	task, err := h.tasks.Detail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) GetByList(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	tasks, err := h.tasks.ListForList(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) GetByProject(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	tasks, err := h.tasks.ListForProject(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetMine lists tasks assigned to the authenticated user.
func (h *TaskHandler) GetMine(c *gin.Context) {
	tasks, err := h.tasks.ListForUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), id, service.UpdateTaskInput{
		Title:        req.Title,
		Description:  req.Description,
		Status:       req.Status,
		Priority:     req.Priority,
		AssignedToID: req.AssignedToID,
		DueDate:      req.DueDate,
	}, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), id, currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.tasks.UpdateStatus(c.Request.Context(), id, req.Status, currentUserID(c))
	if err != nil {
		apiError(c, err)
		return
	}
	apiOK(c, task, "Status updated")
}

func (h *TaskHandler) UpdatePriority(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req PriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.tasks.UpdatePriority(c.Request.Context(), id, req.Priority, currentUserID(c))
	if err != nil {
		apiError(c, err)
		return
	}
	apiOK(c, task, "Priority updated")
}

// Assign sets or, with a null user_id, clears the assignee.
func (h *TaskHandler) Assign(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.tasks.Assign(c.Request.Context(), id, req.UserID, currentUserID(c))
	if err != nil {
		apiError(c, err)
		return
	}
	apiOK(c, task, "Assignment updated")
}

func (h *TaskHandler) Move(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.tasks.Move(c.Request.Context(), id, req.ListID, req.Position, currentUserID(c))
	if err != nil {
		apiError(c, err)
		return
	}
	apiOK(c, task, "Task moved")
}

func (h *TaskHandler) Filter(c *gin.Context) {
	var req FilterTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tasks, err := h.tasks.Filter(c.Request.Context(), service.TaskFilter{
		ProjectID:  req.ProjectID,
		Status:     req.Status,
		Priority:   req.Priority,
		AssigneeID: req.AssigneeID,
		Search:     req.Search,
		DueFrom:    req.DueFrom,
		DueTo:      req.DueTo,
	})
	if err != nil {
		apiError(c, err)
		return
	}
	apiOK(c, tasks, "")
}

func (h *TaskHandler) Stats(c *gin.Context) {
	id, ok := paramID(c, "project_id")
	if !ok {
		return
	}

	stats, err := h.tasks.Stats(c.Request.Context(), id)
	if err != nil {
		apiError(c, err)
		return
	}
	apiOK(c, stats, "")
}

// Bulk operations apply sequentially; failures are reported per task and
// do not roll back earlier updates.

func (h *TaskHandler) BulkStatus(c *gin.Context) {
	var req BulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.runBulk(c, req.TaskIDs, func(ctx context.Context, id uuid.UUID, actor uuid.UUID) error {
		_, err := h.tasks.UpdateStatus(ctx, id, req.Status, actor)
		return err
	})
}

func (h *TaskHandler) BulkPriority(c *gin.Context) {
	var req BulkPriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.runBulk(c, req.TaskIDs, func(ctx context.Context, id uuid.UUID, actor uuid.UUID) error {
		_, err := h.tasks.UpdatePriority(ctx, id, req.Priority, actor)
		return err
	})
}

func (h *TaskHandler) BulkAssign(c *gin.Context) {
	var req BulkAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.runBulk(c, req.TaskIDs, func(ctx context.Context, id uuid.UUID, actor uuid.UUID) error {
		_, err := h.tasks.Assign(ctx, id, req.UserID, actor)
		return err
	})
}

func (h *TaskHandler) runBulk(c *gin.Context, taskIDs []uuid.UUID, apply func(context.Context, uuid.UUID, uuid.UUID) error) {
	actor := currentUserID(c)
	results := make([]bulkResult, 0, len(taskIDs))
	updated := 0

	for _, id := range taskIDs {
		if err := apply(c.Request.Context(), id, actor); err != nil {
			_, message := classifyError(err)
			results = append(results, bulkResult{TaskID: id, Success: false, Message: message})
			continue
		}
		updated++
		results = append(results, bulkResult{TaskID: id, Success: true})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"results": results,
		"updated": updated,
	})
}
