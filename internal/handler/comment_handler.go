package handler

import (
	"context"
	"net/http"

	"taskhub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CommentService interface {
	ListForTask(ctx context.Context, taskID uuid.UUID) ([]service.CommentDto, error)
	Create(ctx context.Context, taskID uuid.UUID, content string, authorID uuid.UUID) (*service.CommentDto, error)
	Update(ctx context.Context, id uuid.UUID, content string, actorID uuid.UUID) (*service.CommentDto, error)
	Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error
}

var _ CommentService = (*service.CommentService)(nil)

type CommentHandler struct {
	comments CommentService
}

func NewCommentHandler(comments CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *CommentHandler) Create(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.comments.Create(c.Request.Context(), id, req.Content, currentUserID(c))
	if err != nil {
		apiError(c, err)
		return
	}
	apiOK(c, comment, "Comment added")
}

func (h *CommentHandler) GetByTask(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	comments, err := h.comments.ListForTask(c.Request.Context(), id)
	if err != nil {
		apiError(c, err)
		return
	}
	apiOK(c, comments, "")
}

func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.comments.Update(c.Request.Context(), id, req.Content, currentUserID(c))
	if err != nil {
		apiError(c, err)
		return
	}
	apiOK(c, comment, "Comment updated")
}

func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.comments.Delete(c.Request.Context(), id, currentUserID(c)); err != nil {
		apiError(c, err)
		return
	}
	apiOK(c, nil, "Comment deleted")
}
