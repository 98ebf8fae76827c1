package handler

import (
	"context"
	"net/http"

	"taskhub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ActivityService interface {
	ForWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]service.ActivityDto, error)
	ForProject(ctx context.Context, projectID uuid.UUID) ([]service.ActivityDto, error)
	ForTask(ctx context.Context, taskID uuid.UUID) ([]service.ActivityDto, error)
}

var _ ActivityService = (*service.ActivityService)(nil)

type ActivityHandler struct {
	activity ActivityService
}

func NewActivityHandler(activity ActivityService) *ActivityHandler {
	return &ActivityHandler{activity: activity}
}

func (h *ActivityHandler) ByWorkspace(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	entries, err := h.activity.ForWorkspace(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *ActivityHandler) ByProject(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	entries, err := h.activity.ForProject(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *ActivityHandler) ByTask(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	entries, err := h.activity.ForTask(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
