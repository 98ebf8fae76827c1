package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taskhub/internal/model"

	"github.com/google/uuid"
)

type TaskService struct {
	tasks         TaskRepository
	lists         TaskListRepository
	users         UserRepository
	activity      ActivityLogRepository
	notifications NotificationRepository
}

func NewTaskService(
	tasks TaskRepository,
	lists TaskListRepository,
	users UserRepository,
	activity ActivityLogRepository,
	notifications NotificationRepository,
) *TaskService {
	return &TaskService{
		tasks:         tasks,
		lists:         lists,
		users:         users,
		activity:      activity,
		notifications: notifications,
	}
}

func (s *TaskService) Get(ctx context.Context, id uuid.UUID) (*TaskDto, error) {
	task, err := s.tasks.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapTaskToDto(task), nil
}

func (s *TaskService) Detail(ctx context.Context, id uuid.UUID) (*TaskDetailDto, error) {
	task, err := s.tasks.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &TaskDetailDto{
		TaskDto:     *mapTaskToDto(task),
		Subtasks:    make([]SubtaskDto, len(task.Subtasks)),
		Comments:    make([]CommentDto, len(task.Comments)),
		Attachments: make([]AttachmentDto, len(task.Attachments)),
	}
	for i := range task.Subtasks {
		detail.Subtasks[i] = *mapSubtaskToDto(&task.Subtasks[i])
	}
	for i := range task.Comments {
		detail.Comments[i] = *mapCommentToDto(&task.Comments[i])
	}
	for i := range task.Attachments {
		detail.Attachments[i] = *mapAttachmentToDto(&task.Attachments[i])
	}
	return detail, nil
}

func (s *TaskService) ListForList(ctx context.Context, listID uuid.UUID) ([]TaskDto, error) {
	if _, err := s.lists.GetByID(ctx, listID); err != nil {
		return nil, err
	}
	tasks, err := s.tasks.GetByListID(ctx, listID)
	if err != nil {
		return nil, err
	}
	return mapTasksToDtos(tasks), nil
}

func (s *TaskService) ListForProject(ctx context.Context, projectID uuid.UUID) ([]TaskDto, error) {
	tasks, err := s.tasks.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return mapTasksToDtos(tasks), nil
}

func (s *TaskService) ListForUser(ctx context.Context, userID uuid.UUID) ([]TaskDto, error) {
	tasks, err := s.tasks.GetByAssignee(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapTasksToDtos(tasks), nil
}

// Create appends the task at the end of its list. New tasks start in the
// To Do status; priority defaults to normal.
func (s *TaskService) Create(ctx context.Context, input CreateTaskInput, actorID uuid.UUID) (*TaskDto, error) {
	if input.Title == "" {
		return nil, Invalid("Task title is required")
	}

	list, err := s.lists.GetByID(ctx, input.ListID)
	if err != nil {
		return nil, err
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityNormal
	}
	if !priority.Valid() {
		return nil, Invalid("Invalid priority")
	}

	if input.AssignedToID != nil {
		user, err := s.users.GetByID(ctx, *input.AssignedToID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, Invalid("User not found")
		}
	}

	maxOrder, err := s.tasks.GetMaxOrder(ctx, input.ListID)
	if err != nil {
		return nil, err
	}

	task := &model.Task{
		ID:           uuid.New(),
		Title:        input.Title,
		Description:  input.Description,
		ListID:       input.ListID,
		ProjectID:    list.ProjectID,
		AssignedToID: input.AssignedToID,
		Status:       model.StatusToDo,
		Priority:     priority,
		DueDate:      input.DueDate,
		Order:        maxOrder + 1,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	if err := s.logTaskActivity(ctx, task, actorID, model.ActivityCreated, fmt.Sprintf("Created task '%s'", task.Title)); err != nil {
		return nil, err
	}

	return mapTaskToDto(task), nil
}

// Update applies all fields of the input. Changes are collapsed into a
// single activity entry; an update that changes nothing logs nothing.
func (s *TaskService) Update(ctx context.Context, id uuid.UUID, input UpdateTaskInput, actorID uuid.UUID) (*TaskDto, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title == "" {
		return nil, Invalid("Task title is required")
	}
	if !input.Status.Valid() {
		return nil, Invalid("Invalid status")
	}
	if !input.Priority.Valid() {
		return nil, Invalid("Invalid priority")
	}

	var changes []string
	if task.Title != input.Title || task.Description != input.Description {
		changes = append(changes, "Details updated")
	}
	if task.Status != input.Status {
		changes = append(changes, fmt.Sprintf("Status changed from %s to %s", task.Status, input.Status))
	}
	if task.Priority != input.Priority {
		changes = append(changes, fmt.Sprintf("Priority changed from %s to %s", task.Priority, input.Priority))
	}
	if !sameUUIDPtr(task.AssignedToID, input.AssignedToID) {
		changes = append(changes, "Assignment changed")
	}
	if !sameTimePtr(task.DueDate, input.DueDate) {
		changes = append(changes, "Due date changed")
	}

	if len(changes) == 0 {
		return mapTaskToDto(task), nil
	}

	if input.AssignedToID != nil && !sameUUIDPtr(task.AssignedToID, input.AssignedToID) {
		user, err := s.users.GetByID(ctx, *input.AssignedToID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, Invalid("User not found")
		}
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Status = input.Status
	task.Priority = input.Priority
	task.AssignedToID = input.AssignedToID
	task.DueDate = input.DueDate
	task.UpdatedAt = time.Now()

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	if err := s.logTaskActivity(ctx, task, actorID, model.ActivityUpdated, strings.Join(changes, ", ")); err != nil {
		return nil, err
	}

	return mapTaskToDto(task), nil
}

// UpdateStatus is a no-op when the task already has the given status.
func (s *TaskService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.TaskStatus, actorID uuid.UUID) (*TaskDto, error) {
	if !status.Valid() {
		return nil, Invalid("Invalid status")
	}

	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if task.Status == status {
		return mapTaskToDto(task), nil
	}

	old := task.Status
	task.Status = status
	task.UpdatedAt = time.Now()

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	if err := s.logTaskActivity(ctx, task, actorID, model.ActivityStatusChanged, fmt.Sprintf("Status changed from %s to %s", old, status)); err != nil {
		return nil, err
	}

	return mapTaskToDto(task), nil
}

func (s *TaskService) UpdatePriority(ctx context.Context, id uuid.UUID, priority model.TaskPriority, actorID uuid.UUID) (*TaskDto, error) {
	if !priority.Valid() {
		return nil, Invalid("Invalid priority")
	}

	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if task.Priority == priority {
		return mapTaskToDto(task), nil
	}

	old := task.Priority
	task.Priority = priority
	task.UpdatedAt = time.Now()

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	if err := s.logTaskActivity(ctx, task, actorID, model.ActivityUpdated, fmt.Sprintf("Priority changed from %s to %s", old, priority)); err != nil {
		return nil, err
	}

	return mapTaskToDto(task), nil
}

// Assign sets or clears the assignee. A nil assigneeID unassigns. The new
// assignee gets a notification unless they assigned the task to themselves.
func (s *TaskService) Assign(ctx context.Context, id uuid.UUID, assigneeID *uuid.UUID, actorID uuid.UUID) (*TaskDto, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if sameUUIDPtr(task.AssignedToID, assigneeID) {
		return mapTaskToDto(task), nil
	}

	var assignee *model.User
	if assigneeID != nil {
		assignee, err = s.users.GetByID(ctx, *assigneeID)
		if err != nil {
			return nil, err
		}
		if assignee == nil {
			return nil, Invalid("User not found")
		}
	}

	task.AssignedToID = assigneeID
	task.UpdatedAt = time.Now()

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	if assignee == nil {
		if err := s.logTaskActivity(ctx, task, actorID, model.ActivityUnassigned, "Unassigned task"); err != nil {
			return nil, err
		}
	} else {
		if err := s.logTaskActivity(ctx, task, actorID, model.ActivityAssigned, fmt.Sprintf("Assigned task to %s", assignee.FullName())); err != nil {
			return nil, err
		}
		if assignee.ID != actorID {
			if err := s.notifications.Create(ctx, &model.Notification{
				Title:     "Task assigned to you",
				Message:   fmt.Sprintf("You were assigned to task '%s'", task.Title),
				UserID:    assignee.ID,
				TaskID:    &task.ID,
				ProjectID: &task.ProjectID,
			}); err != nil {
				return nil, err
			}
		}
	}

	return mapTaskToDto(task), nil
}

// Move places the task at the given position in the target list. The
// target must belong to the same project.
func (s *TaskService) Move(ctx context.Context, id, targetListID uuid.UUID, position int, actorID uuid.UUID) (*TaskDto, error) {
	if position < 1 {
		return nil, Invalid("Position must be at least 1")
	}

	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	target, err := s.lists.GetByID(ctx, targetListID)
	if err != nil {
		return nil, err
	}
	if target.ProjectID != task.ProjectID {
		return nil, Invalid("Cannot move task to a list in another project")
	}

	if err := s.tasks.Move(ctx, id, targetListID, position); err != nil {
		return nil, err
	}

	task, err = s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.logTaskActivity(ctx, task, actorID, model.ActivityUpdated, fmt.Sprintf("Moved task to list '%s'", target.Name)); err != nil {
		return nil, err
	}

	return mapTaskToDto(task), nil
}

func (s *TaskService) Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}

	return s.logTaskActivity(ctx, task, actorID, model.ActivityDeleted, fmt.Sprintf("Deleted task '%s'", task.Title))
}

// Filter narrows a project's tasks; predicates are combined with AND.
func (s *TaskService) Filter(ctx context.Context, filter TaskFilter) ([]TaskDto, error) {
	tasks, err := s.tasks.GetByProjectID(ctx, filter.ProjectID)
	if err != nil {
		return nil, err
	}

	var matched []model.Task
	for _, t := range tasks {
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		if filter.Priority != nil && t.Priority != *filter.Priority {
			continue
		}
		if filter.AssigneeID != nil {
			if t.AssignedToID == nil || *t.AssignedToID != *filter.AssigneeID {
				continue
			}
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(t.Title), needle) {
				continue
			}
		}
		if filter.DueFrom != nil && (t.DueDate == nil || t.DueDate.Before(*filter.DueFrom)) {
			continue
		}
		if filter.DueTo != nil && (t.DueDate == nil || t.DueDate.After(*filter.DueTo)) {
			continue
		}
		matched = append(matched, t)
	}

	return mapTasksToDtos(matched), nil
}

// Stats summarizes a project's tasks. Overdue and due-today tasks exclude
// anything already done.
func (s *TaskService) Stats(ctx context.Context, projectID uuid.UUID) (*TaskStatsDto, error) {
	tasks, err := s.tasks.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)

	stats := &TaskStatsDto{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case model.StatusDone:
			stats.Completed++
		case model.StatusInProgress:
			stats.InProgress++
		case model.StatusInReview:
			stats.InReview++
		}
		if t.Priority == model.PriorityUrgent || t.Priority == model.PriorityHigh {
			stats.HighPriority++
		}
		if t.DueDate != nil && t.Status != model.StatusDone {
			switch {
			case t.DueDate.Before(today):
				stats.Overdue++
			case t.DueDate.Before(tomorrow):
				stats.DueToday++
			}
		}
	}
	return stats, nil
}

func (s *TaskService) logTaskActivity(ctx context.Context, task *model.Task, actorID uuid.UUID, kind model.ActivityType, description string) error {
	return s.activity.Create(ctx, &model.ActivityLog{
		Type:        kind,
		Description: description,
		UserID:      actorID,
		ProjectID:   &task.ProjectID,
		TaskID:      &task.ID,
	})
}

func mapTaskToDto(task *model.Task) *TaskDto {
	completed := 0
	for _, st := range task.Subtasks {
		if st.IsCompleted {
			completed++
		}
	}
	return &TaskDto{
		ID:                    task.ID,
		Title:                 task.Title,
		Description:           task.Description,
		ListID:                task.ListID,
		ProjectID:             task.ProjectID,
		AssignedToID:          task.AssignedToID,
		Status:                task.Status,
		Priority:              task.Priority,
		DueDate:               task.DueDate,
		Order:                 task.Order,
		SubtaskCount:          len(task.Subtasks),
		CompletedSubtaskCount: completed,
		CreatedAt:             task.CreatedAt,
	}
}

func mapTasksToDtos(tasks []model.Task) []TaskDto {
	dtos := make([]TaskDto, len(tasks))
	for i := range tasks {
		dtos[i] = *mapTaskToDto(&tasks[i])
	}
	return dtos
}

func sameUUIDPtr(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func sameTimePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
