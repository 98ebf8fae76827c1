package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"taskhub/internal/model"

	"github.com/google/uuid"
)

const maxAttachmentSize = 10 << 20 // 10 MiB

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".zip":  true,
	".xlsx": true,
	".xls":  true,
}

type AttachmentService struct {
	attachments AttachmentRepository
	tasks       TaskRepository
	activity    ActivityLogRepository
	store       FileStore
}

func NewAttachmentService(attachments AttachmentRepository, tasks TaskRepository, activity ActivityLogRepository, store FileStore) *AttachmentService {
	return &AttachmentService{attachments: attachments, tasks: tasks, activity: activity, store: store}
}

func (s *AttachmentService) ListForTask(ctx context.Context, taskID uuid.UUID) ([]AttachmentDto, error) {
	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return nil, err
	}

	attachments, err := s.attachments.GetByTaskID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	dtos := make([]AttachmentDto, len(attachments))
	for i := range attachments {
		dtos[i] = *mapAttachmentToDto(&attachments[i])
	}
	return dtos, nil
}

func (s *AttachmentService) Get(ctx context.Context, id uuid.UUID) (*AttachmentDto, error) {
	attachment, err := s.attachments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapAttachmentToDto(attachment), nil
}

// Upload stores the file bytes and records the attachment. Size and
// extension are checked before anything touches disk.
func (s *AttachmentService) Upload(ctx context.Context, input UploadAttachmentInput, actorID uuid.UUID) (*AttachmentDto, error) {
	if input.Size <= 0 {
		return nil, Invalid("File is empty")
	}
	if input.Size > maxAttachmentSize {
		return nil, Invalid("File size exceeds 10MB limit")
	}

	ext := strings.ToLower(filepath.Ext(input.FileName))
	if !allowedExtensions[ext] {
		return nil, Invalid("File type %s is not allowed", ext)
	}

	task, err := s.tasks.GetByID(ctx, input.TaskID)
	if err != nil {
		return nil, err
	}

	relPath, err := s.store.Save(input.Content, input.FileName)
	if err != nil {
		return nil, err
	}

	attachment := &model.Attachment{
		ID:           uuid.New(),
		FileName:     input.FileName,
		FilePath:     relPath,
		FileType:     ext,
		FileSize:     input.Size,
		TaskID:       input.TaskID,
		UploadedByID: actorID,
	}

	if err := s.attachments.Create(ctx, attachment); err != nil {
		// Keep the store consistent with the database.
		_ = s.store.Delete(relPath)
		return nil, err
	}

	if err := s.activity.Create(ctx, &model.ActivityLog{
		Type:        model.ActivityAttachmentAdded,
		Description: fmt.Sprintf("Uploaded file: %s", attachment.FileName),
		UserID:      actorID,
		ProjectID:   &task.ProjectID,
		TaskID:      &task.ID,
	}); err != nil {
		return nil, err
	}

	return mapAttachmentToDto(attachment), nil
}

// Delete removes the record and the stored file. Only the uploader may
// delete; a missing file on disk is not an error.
func (s *AttachmentService) Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error {
	attachment, err := s.attachments.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if attachment.UploadedByID != actorID {
		return Forbidden("Cannot delete attachments uploaded by other users")
	}

	if err := s.store.Delete(attachment.FilePath); err != nil {
		return err
	}

	if err := s.attachments.Delete(ctx, id); err != nil {
		return err
	}

	return s.activity.Create(ctx, &model.ActivityLog{
		Type:        model.ActivityUpdated,
		Description: fmt.Sprintf("Deleted attachment: %s", attachment.FileName),
		UserID:      actorID,
		TaskID:      &attachment.TaskID,
	})
}

func mapAttachmentToDto(attachment *model.Attachment) *AttachmentDto {
	return &AttachmentDto{
		ID:           attachment.ID,
		FileName:     attachment.FileName,
		FilePath:     attachment.FilePath,
		FileType:     attachment.FileType,
		FileSize:     attachment.FileSize,
		TaskID:       attachment.TaskID,
		UploadedByID: attachment.UploadedByID,
		CreatedAt:    attachment.CreatedAt,
	}
}
