package service

import (
	"context"
	"strings"
	"time"

	"taskhub/internal/model"

	"github.com/google/uuid"
)

type CommentService struct {
	comments CommentRepository
	tasks    TaskRepository
	activity ActivityLogRepository
}

func NewCommentService(comments CommentRepository, tasks TaskRepository, activity ActivityLogRepository) *CommentService {
	return &CommentService{comments: comments, tasks: tasks, activity: activity}
}

func (s *CommentService) ListForTask(ctx context.Context, taskID uuid.UUID) ([]CommentDto, error) {
	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return nil, err
	}

	comments, err := s.comments.GetByTaskID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	dtos := make([]CommentDto, len(comments))
	for i := range comments {
		dtos[i] = *mapCommentToDto(&comments[i])
	}
	return dtos, nil
}

func (s *CommentService) Create(ctx context.Context, taskID uuid.UUID, content string, authorID uuid.UUID) (*CommentDto, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, Invalid("Comment cannot be empty")
	}

	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		ID:       uuid.New(),
		Content:  content,
		TaskID:   taskID,
		AuthorID: authorID,
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	if err := s.activity.Create(ctx, &model.ActivityLog{
		Type:        model.ActivityCommentAdded,
		Description: "Added a comment",
		UserID:      authorID,
		ProjectID:   &task.ProjectID,
		TaskID:      &task.ID,
	}); err != nil {
		return nil, err
	}

	return mapCommentToDto(comment), nil
}

// Update is restricted to the comment's author and marks it as edited.
func (s *CommentService) Update(ctx context.Context, id uuid.UUID, content string, actorID uuid.UUID) (*CommentDto, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, Invalid("Comment cannot be empty")
	}

	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if comment.AuthorID != actorID {
		return nil, Forbidden("Can only edit your own comments")
	}

	comment.Content = content
	comment.IsEdited = true
	comment.UpdatedAt = time.Now()

	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}
	return mapCommentToDto(comment), nil
}

func (s *CommentService) Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if comment.AuthorID != actorID {
		return Forbidden("Can only delete your own comments")
	}

	return s.comments.Delete(ctx, id)
}

func mapCommentToDto(comment *model.Comment) *CommentDto {
	dto := &CommentDto{
		ID:        comment.ID,
		Content:   comment.Content,
		TaskID:    comment.TaskID,
		AuthorID:  comment.AuthorID,
		IsEdited:  comment.IsEdited,
		CreatedAt: comment.CreatedAt,
	}
	if comment.Author.ID != uuid.Nil {
		dto.AuthorName = comment.Author.FullName()
	}
	return dto
}
