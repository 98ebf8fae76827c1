package service

import (
	"context"
	"time"

	"taskhub/internal/model"

	"github.com/google/uuid"
)

type SubtaskService struct {
	subtasks SubtaskRepository
	tasks    TaskRepository
}

func NewSubtaskService(subtasks SubtaskRepository, tasks TaskRepository) *SubtaskService {
	return &SubtaskService{subtasks: subtasks, tasks: tasks}
}

func (s *SubtaskService) ListForTask(ctx context.Context, taskID uuid.UUID) ([]SubtaskDto, error) {
	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return nil, err
	}

	subtasks, err := s.subtasks.GetByTaskID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	dtos := make([]SubtaskDto, len(subtasks))
	for i := range subtasks {
		dtos[i] = *mapSubtaskToDto(&subtasks[i])
	}
	return dtos, nil
}

func (s *SubtaskService) Create(ctx context.Context, taskID uuid.UUID, title string) (*SubtaskDto, error) {
	if title == "" {
		return nil, Invalid("Subtask title is required")
	}

	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return nil, err
	}

	maxOrder, err := s.subtasks.GetMaxOrder(ctx, taskID)
	if err != nil {
		return nil, err
	}

	subtask := &model.Subtask{
		ID:     uuid.New(),
		Title:  title,
		TaskID: taskID,
		Order:  maxOrder + 1,
	}

	if err := s.subtasks.Create(ctx, subtask); err != nil {
		return nil, err
	}
	return mapSubtaskToDto(subtask), nil
}

// Toggle flips the completion flag, stamping or clearing CompletedAt.
func (s *SubtaskService) Toggle(ctx context.Context, id uuid.UUID) (*SubtaskDto, error) {
	subtask, err := s.subtasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	subtask.IsCompleted = !subtask.IsCompleted
	if subtask.IsCompleted {
		now := time.Now()
		subtask.CompletedAt = &now
	} else {
		subtask.CompletedAt = nil
	}

	if err := s.subtasks.Update(ctx, subtask); err != nil {
		return nil, err
	}
	return mapSubtaskToDto(subtask), nil
}

func (s *SubtaskService) Update(ctx context.Context, id uuid.UUID, title string) (*SubtaskDto, error) {
	if title == "" {
		return nil, Invalid("Subtask title is required")
	}

	subtask, err := s.subtasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	subtask.Title = title
	if err := s.subtasks.Update(ctx, subtask); err != nil {
		return nil, err
	}
	return mapSubtaskToDto(subtask), nil
}

func (s *SubtaskService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.subtasks.GetByID(ctx, id); err != nil {
		return err
	}
	return s.subtasks.Delete(ctx, id)
}

func mapSubtaskToDto(subtask *model.Subtask) *SubtaskDto {
	return &SubtaskDto{
		ID:          subtask.ID,
		Title:       subtask.Title,
		TaskID:      subtask.TaskID,
		IsCompleted: subtask.IsCompleted,
		Order:       subtask.Order,
	}
}
