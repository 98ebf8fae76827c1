package service

import (
	"context"
	"fmt"
	"time"

	"taskhub/internal/model"

	"github.com/google/uuid"
)

type TaskListService struct {
	lists    TaskListRepository
	projects ProjectRepository
	activity ActivityLogRepository
}

func NewTaskListService(lists TaskListRepository, projects ProjectRepository, activity ActivityLogRepository) *TaskListService {
	return &TaskListService{lists: lists, projects: projects, activity: activity}
}

func (s *TaskListService) Get(ctx context.Context, id uuid.UUID) (*TaskListDto, error) {
	list, err := s.lists.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapTaskListToDto(list), nil
}

func (s *TaskListService) ListForProject(ctx context.Context, projectID uuid.UUID) ([]TaskListDto, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	lists, err := s.lists.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	dtos := make([]TaskListDto, len(lists))
	for i := range lists {
		dtos[i] = *mapTaskListToDto(&lists[i])
	}
	return dtos, nil
}

// Create appends the list at the end of the project's lists.
func (s *TaskListService) Create(ctx context.Context, input CreateTaskListInput, actorID uuid.UUID) (*TaskListDto, error) {
	if input.Name == "" {
		return nil, Invalid("List name is required")
	}

	project, err := s.projects.GetByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	maxOrder, err := s.lists.GetMaxOrder(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	list := &model.TaskList{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Color:       input.Color,
		ProjectID:   input.ProjectID,
		Order:       maxOrder + 1,
		IsActive:    true,
	}

	if err := s.lists.Create(ctx, list); err != nil {
		return nil, err
	}

	if err := s.activity.Create(ctx, &model.ActivityLog{
		Type:        model.ActivityCreated,
		Description: fmt.Sprintf("Created list '%s'", list.Name),
		UserID:      actorID,
		WorkspaceID: &project.WorkspaceID,
		ProjectID:   &project.ID,
	}); err != nil {
		return nil, err
	}

	return mapTaskListToDto(list), nil
}

func (s *TaskListService) Update(ctx context.Context, id uuid.UUID, input UpdateTaskListInput, actorID uuid.UUID) (*TaskListDto, error) {
	list, err := s.lists.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	list.Name = input.Name
	list.Description = input.Description
	list.Color = input.Color
	list.UpdatedAt = time.Now()

	if err := s.lists.Update(ctx, list); err != nil {
		return nil, err
	}

	if err := s.activity.Create(ctx, &model.ActivityLog{
		Type:        model.ActivityUpdated,
		Description: fmt.Sprintf("Updated list '%s'", list.Name),
		UserID:      actorID,
		ProjectID:   &list.ProjectID,
	}); err != nil {
		return nil, err
	}

	return mapTaskListToDto(list), nil
}

func (s *TaskListService) Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error {
	list, err := s.lists.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.lists.SoftDelete(ctx, id); err != nil {
		return err
	}

	return s.activity.Create(ctx, &model.ActivityLog{
		Type:        model.ActivityDeleted,
		Description: fmt.Sprintf("Deleted list '%s'", list.Name),
		UserID:      actorID,
		ProjectID:   &list.ProjectID,
	})
}

func mapTaskListToDto(list *model.TaskList) *TaskListDto {
	return &TaskListDto{
		ID:          list.ID,
		Name:        list.Name,
		Description: list.Description,
		Color:       list.Color,
		ProjectID:   list.ProjectID,
		Order:       list.Order,
	}
}
