package handler

import (
	"context"
	"net/http"
	"path/filepath"

	"taskhub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AttachmentService interface {
	ListForTask(ctx context.Context, taskID uuid.UUID) ([]service.AttachmentDto, error)
	Get(ctx context.Context, id uuid.UUID) (*service.AttachmentDto, error)
	Upload(ctx context.Context, input service.UploadAttachmentInput, actorID uuid.UUID) (*service.AttachmentDto, error)
	Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error
}

var _ AttachmentService = (*service.AttachmentService)(nil)

type AttachmentHandler struct {
	attachments AttachmentService
	uploadDir   string
}

func NewAttachmentHandler(attachments AttachmentService, uploadDir string) *AttachmentHandler {
	return &AttachmentHandler{attachments: attachments, uploadDir: uploadDir}
}

// Upload accepts a multipart form with a "file" part and a "task_id" field.
func (h *AttachmentHandler) Upload(c *gin.Context) {
	taskID, err := uuid.Parse(c.PostForm("task_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task_id"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		apiError(c, err)
		return
	}
	defer file.Close()

	attachment, err := h.attachments.Upload(c.Request.Context(), service.UploadAttachmentInput{
		FileName: fileHeader.Filename,
		Size:     fileHeader.Size,
		TaskID:   taskID,
		Content:  file,
	}, currentUserID(c))
	if err != nil {
		apiError(c, err)
		return
	}
	apiOK(c, attachment, "File uploaded")
}

func (h *AttachmentHandler) GetByTask(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	attachments, err := h.attachments.ListForTask(c.Request.Context(), id)
	if err != nil {
		apiError(c, err)
		return
	}
	apiOK(c, attachments, "")
}

// Download streams the stored file under its original name.
func (h *AttachmentHandler) Download(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	attachment, err := h.attachments.Get(c.Request.Context(), id)
	if err != nil {
		apiError(c, err)
		return
	}

	c.FileAttachment(filepath.Join(h.uploadDir, attachment.FilePath), attachment.FileName)
}

func (h *AttachmentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.attachments.Delete(c.Request.Context(), id, currentUserID(c)); err != nil {
		apiError(c, err)
		return
	}
	apiOK(c, nil, "Attachment deleted")
}
