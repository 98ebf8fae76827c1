package service

import (
	"context"
	"io"
	"time"

	"taskhub/internal/model"
	"taskhub/internal/repository"
	"taskhub/internal/storage"

	"github.com/google/uuid"
)

// Repository contracts consumed by the services. The concrete
// implementations live in internal/repository; tests substitute fakes.

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type WorkspaceRepository interface {
	Create(ctx context.Context, workspace *model.Workspace) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Workspace, error)
	GetForUser(ctx context.Context, userID uuid.UUID) ([]model.Workspace, error)
	Update(ctx context.Context, workspace *model.Workspace) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type WorkspaceUserRepository interface {
	Add(ctx context.Context, member *model.WorkspaceUser) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.WorkspaceUser, error)
	GetByWorkspaceAndUser(ctx context.Context, workspaceID, userID uuid.UUID) (*model.WorkspaceUser, error)
	GetMembers(ctx context.Context, workspaceID uuid.UUID) ([]model.WorkspaceUser, error)
	Update(ctx context.Context, member *model.WorkspaceUser) error
	Remove(ctx context.Context, id uuid.UUID) error
}

type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	GetByWorkspaceID(ctx context.Context, workspaceID uuid.UUID) ([]model.Project, error)
	Update(ctx context.Context, project *model.Project) error
	Archive(ctx context.Context, id uuid.UUID) error
}

type TaskListRepository interface {
	Create(ctx context.Context, list *model.TaskList) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.TaskList, error)
	GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]model.TaskList, error)
	GetMaxOrder(ctx context.Context, projectID uuid.UUID) (int, error)
	Update(ctx context.Context, list *model.TaskList) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*model.Task, error)
	GetByListID(ctx context.Context, listID uuid.UUID) ([]model.Task, error)
	GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]model.Task, error)
	GetByAssignee(ctx context.Context, userID uuid.UUID) ([]model.Task, error)
	GetDueOn(ctx context.Context, day time.Time) ([]model.Task, error)
	GetMaxOrder(ctx context.Context, listID uuid.UUID) (int, error)
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	Move(ctx context.Context, taskID, targetListID uuid.UUID, newOrder int) error
}

type SubtaskRepository interface {
	Create(ctx context.Context, subtask *model.Subtask) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Subtask, error)
	GetByTaskID(ctx context.Context, taskID uuid.UUID) ([]model.Subtask, error)
	GetMaxOrder(ctx context.Context, taskID uuid.UUID) (int, error)
	Update(ctx context.Context, subtask *model.Subtask) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	GetByTaskID(ctx context.Context, taskID uuid.UUID) ([]model.Comment, error)
	Update(ctx context.Context, comment *model.Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type AttachmentRepository interface {
	Create(ctx context.Context, attachment *model.Attachment) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Attachment, error)
	GetByTaskID(ctx context.Context, taskID uuid.UUID) ([]model.Attachment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ActivityLogRepository interface {
	Create(ctx context.Context, entry *model.ActivityLog) error
	GetByWorkspaceID(ctx context.Context, workspaceID uuid.UUID, limit int) ([]model.ActivityLog, error)
	GetByProjectID(ctx context.Context, projectID uuid.UUID, limit int) ([]model.ActivityLog, error)
	GetByTaskID(ctx context.Context, taskID uuid.UUID, limit int) ([]model.ActivityLog, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Notification, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]model.Notification, error)
	GetUnread(ctx context.Context, userID uuid.UUID) ([]model.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
	Update(ctx context.Context, notification *model.Notification) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// FileStore is the attachment byte store.
type FileStore interface {
	Save(r io.Reader, fileName string) (string, error)
	Delete(relPath string) error
	Exists(relPath string) bool
}

var (
	_ UserRepository          = (*repository.UserRepository)(nil)
	_ WorkspaceRepository     = (*repository.WorkspaceRepository)(nil)
	_ WorkspaceUserRepository = (*repository.WorkspaceUserRepository)(nil)
	_ ProjectRepository       = (*repository.ProjectRepository)(nil)
	_ TaskListRepository      = (*repository.TaskListRepository)(nil)
	_ TaskRepository          = (*repository.TaskRepository)(nil)
	_ SubtaskRepository       = (*repository.SubtaskRepository)(nil)
	_ CommentRepository       = (*repository.CommentRepository)(nil)
	_ AttachmentRepository    = (*repository.AttachmentRepository)(nil)
	_ ActivityLogRepository   = (*repository.ActivityLogRepository)(nil)
	_ NotificationRepository  = (*repository.NotificationRepository)(nil)
	_ FileStore               = (*storage.LocalStore)(nil)
)
