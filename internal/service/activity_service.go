package service

import (
	"context"

	"taskhub/internal/model"

	"github.com/google/uuid"
)

// Feed sizes, newest first.
const (
	workspaceFeedLimit = 100
	projectFeedLimit   = 100
	taskFeedLimit      = 50
)

type ActivityService struct {
	activity ActivityLogRepository
}

func NewActivityService(activity ActivityLogRepository) *ActivityService {
	return &ActivityService{activity: activity}
}

func (s *ActivityService) ForWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]ActivityDto, error) {
	entries, err := s.activity.GetByWorkspaceID(ctx, workspaceID, workspaceFeedLimit)
	if err != nil {
		return nil, err
	}
	return mapActivityToDtos(entries), nil
}

func (s *ActivityService) ForProject(ctx context.Context, projectID uuid.UUID) ([]ActivityDto, error) {
	entries, err := s.activity.GetByProjectID(ctx, projectID, projectFeedLimit)
	if err != nil {
		return nil, err
	}
	return mapActivityToDtos(entries), nil
}

func (s *ActivityService) ForTask(ctx context.Context, taskID uuid.UUID) ([]ActivityDto, error) {
	entries, err := s.activity.GetByTaskID(ctx, taskID, taskFeedLimit)
	if err != nil {
		return nil, err
	}
	return mapActivityToDtos(entries), nil
}

func mapActivityToDtos(entries []model.ActivityLog) []ActivityDto {
	dtos := make([]ActivityDto, len(entries))
	for i, e := range entries {
		dtos[i] = ActivityDto{
			ID:          e.ID,
			Type:        e.Type,
			Description: e.Description,
			UserID:      e.UserID,
			WorkspaceID: e.WorkspaceID,
			ProjectID:   e.ProjectID,
			TaskID:      e.TaskID,
			CreatedAt:   e.CreatedAt,
		}
		if e.User.ID != uuid.Nil {
			dtos[i].UserName = e.User.FullName()
		}
	}
	return dtos
}
