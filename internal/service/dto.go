package service

import (
	"io"
	"time"

	"taskhub/internal/model"

	"github.com/google/uuid"
)

type UserDto struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

type WorkspaceDto struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"`
	OwnerID     uuid.UUID `json:"owner_id"`
	MemberCount int       `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type WorkspaceMemberDto struct {
	ID          uuid.UUID           `json:"id"`
	WorkspaceID uuid.UUID           `json:"workspace_id"`
	UserID      uuid.UUID           `json:"user_id"`
	UserEmail   string              `json:"user_email"`
	UserName    string              `json:"user_name"`
	Role        model.WorkspaceRole `json:"role"`
	JoinedAt    time.Time           `json:"joined_at"`
}

type ProjectDto struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"`
	WorkspaceID uuid.UUID `json:"workspace_id"`
	CreatedByID uuid.UUID `json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type TaskListDto struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"`
	ProjectID   uuid.UUID `json:"project_id"`
	Order       int       `json:"order"`
}

type TaskDto struct {
	ID                    uuid.UUID          `json:"id"`
	Title                 string             `json:"title"`
	Description           string             `json:"description,omitempty"`
	ListID                uuid.UUID          `json:"list_id"`
	ProjectID             uuid.UUID          `json:"project_id"`
	AssignedToID          *uuid.UUID         `json:"assigned_to_id,omitempty"`
	Status                model.TaskStatus   `json:"status"`
	Priority              model.TaskPriority `json:"priority"`
	DueDate               *time.Time         `json:"due_date,omitempty"`
	Order                 int                `json:"order"`
	SubtaskCount          int                `json:"subtask_count"`
	CompletedSubtaskCount int                `json:"completed_subtask_count"`
	CreatedAt             time.Time          `json:"created_at"`
}

type TaskDetailDto struct {
	TaskDto
	Subtasks    []SubtaskDto    `json:"subtasks"`
	Comments    []CommentDto    `json:"comments"`
	Attachments []AttachmentDto `json:"attachments"`
}

type SubtaskDto struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	TaskID      uuid.UUID `json:"task_id"`
	IsCompleted bool      `json:"is_completed"`
	Order       int       `json:"order"`
}

type CommentDto struct {
	ID         uuid.UUID `json:"id"`
	Content    string    `json:"content"`
	TaskID     uuid.UUID `json:"task_id"`
	AuthorID   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`
	IsEdited   bool      `json:"is_edited"`
	CreatedAt  time.Time `json:"created_at"`
}

type AttachmentDto struct {
	ID           uuid.UUID `json:"id"`
	FileName     string    `json:"file_name"`
	FilePath     string    `json:"file_path"`
	FileType     string    `json:"file_type"`
	FileSize     int64     `json:"file_size"`
	TaskID       uuid.UUID `json:"task_id"`
	UploadedByID uuid.UUID `json:"uploaded_by_id"`
	CreatedAt    time.Time `json:"created_at"`
}

type ActivityDto struct {
	ID          uuid.UUID          `json:"id"`
	Type        model.ActivityType `json:"type"`
	Description string             `json:"description,omitempty"`
	UserID      uuid.UUID          `json:"user_id"`
	UserName    string             `json:"user_name,omitempty"`
	WorkspaceID *uuid.UUID         `json:"workspace_id,omitempty"`
	ProjectID   *uuid.UUID         `json:"project_id,omitempty"`
	TaskID      *uuid.UUID         `json:"task_id,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

type NotificationDto struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Message   string     `json:"message,omitempty"`
	TaskID    *uuid.UUID `json:"task_id,omitempty"`
	ProjectID *uuid.UUID `json:"project_id,omitempty"`
	IsRead    bool       `json:"is_read"`
	CreatedAt time.Time  `json:"created_at"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
}

type TaskStatsDto struct {
	Total        int `json:"total"`
	Completed    int `json:"completed"`
	InProgress   int `json:"in_progress"`
	InReview     int `json:"in_review"`
	Overdue      int `json:"overdue"`
	DueToday     int `json:"due_today"`
	HighPriority int `json:"high_priority"`
}

// Inputs.

type RegisterInput struct {
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
}

type CreateWorkspaceInput struct {
	Name        string
	Description string
	Color       string
}

type UpdateWorkspaceInput struct {
	Name        string
	Description string
	Color       string
}

type InviteUserInput struct {
	Email string
	Role  model.WorkspaceRole
}

type CreateProjectInput struct {
	Name        string
	Description string
	Color       string
	WorkspaceID uuid.UUID
}

type UpdateProjectInput struct {
	Name        string
	Description string
	Color       string
}

type CreateTaskListInput struct {
	Name        string
	Description string
	Color       string
	ProjectID   uuid.UUID
}

type UpdateTaskListInput struct {
	Name        string
	Description string
	Color       string
}

type CreateTaskInput struct {
	Title        string
	Description  string
	ListID       uuid.UUID
	AssignedToID *uuid.UUID
	Priority     model.TaskPriority
	DueDate      *time.Time
}

type UpdateTaskInput struct {
	Title        string
	Description  string
	Status       model.TaskStatus
	Priority     model.TaskPriority
	AssignedToID *uuid.UUID
	DueDate      *time.Time
}

// TaskFilter predicates are combined with AND; nil fields do not filter.
type TaskFilter struct {
	ProjectID  uuid.UUID
	Status     *model.TaskStatus
	Priority   *model.TaskPriority
	AssigneeID *uuid.UUID
	Search     string
	DueFrom    *time.Time
	DueTo      *time.Time
}

type UploadAttachmentInput struct {
	FileName string
	Size     int64
	TaskID   uuid.UUID
	Content  io.Reader
}
