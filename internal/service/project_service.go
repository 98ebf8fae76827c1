package service

import (
	"context"
	"fmt"
	"time"

	"taskhub/internal/model"

	"github.com/google/uuid"
)

type ProjectService struct {
	projects   ProjectRepository
	workspaces WorkspaceRepository
	activity   ActivityLogRepository
}

func NewProjectService(projects ProjectRepository, workspaces WorkspaceRepository, activity ActivityLogRepository) *ProjectService {
	return &ProjectService{projects: projects, workspaces: workspaces, activity: activity}
}

func (s *ProjectService) Get(ctx context.Context, id uuid.UUID) (*ProjectDto, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapProjectToDto(project), nil
}

func (s *ProjectService) ListForWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]ProjectDto, error) {
	if _, err := s.workspaces.GetByID(ctx, workspaceID); err != nil {
		return nil, err
	}

	projects, err := s.projects.GetByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	dtos := make([]ProjectDto, len(projects))
	for i := range projects {
		dtos[i] = *mapProjectToDto(&projects[i])
	}
	return dtos, nil
}

func (s *ProjectService) Create(ctx context.Context, input CreateProjectInput, actorID uuid.UUID) (*ProjectDto, error) {
	if input.Name == "" {
		return nil, Invalid("Project name is required")
	}

	if _, err := s.workspaces.GetByID(ctx, input.WorkspaceID); err != nil {
		return nil, err
	}

	project := &model.Project{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Color:       input.Color,
		WorkspaceID: input.WorkspaceID,
		CreatedByID: actorID,
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}

	if err := s.activity.Create(ctx, &model.ActivityLog{
		Type:        model.ActivityCreated,
		Description: fmt.Sprintf("Created project '%s'", project.Name),
		UserID:      actorID,
		WorkspaceID: &project.WorkspaceID,
		ProjectID:   &project.ID,
	}); err != nil {
		return nil, err
	}

	return mapProjectToDto(project), nil
}

func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, input UpdateProjectInput, actorID uuid.UUID) (*ProjectDto, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	project.Name = input.Name
	project.Description = input.Description
	project.Color = input.Color
	project.UpdatedAt = time.Now()

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}

	if err := s.activity.Create(ctx, &model.ActivityLog{
		Type:        model.ActivityUpdated,
		Description: fmt.Sprintf("Updated project '%s'", project.Name),
		UserID:      actorID,
		WorkspaceID: &project.WorkspaceID,
		ProjectID:   &project.ID,
	}); err != nil {
		return nil, err
	}

	return mapProjectToDto(project), nil
}

// Delete archives the project; its lists and tasks stay in place but the
// project disappears from workspace listings.
func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.projects.Archive(ctx, id); err != nil {
		return err
	}

	return s.activity.Create(ctx, &model.ActivityLog{
		Type:        model.ActivityDeleted,
		Description: fmt.Sprintf("Deleted project '%s'", project.Name),
		UserID:      actorID,
		WorkspaceID: &project.WorkspaceID,
		ProjectID:   &project.ID,
	})
}

func mapProjectToDto(project *model.Project) *ProjectDto {
	return &ProjectDto{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Color:       project.Color,
		WorkspaceID: project.WorkspaceID,
		CreatedByID: project.CreatedByID,
		CreatedAt:   project.CreatedAt,
	}
}
