package model

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	StatusToDo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusInReview   TaskStatus = "in_review"
	StatusDone       TaskStatus = "done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusInReview, StatusDone:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityUrgent TaskPriority = "urgent"
	PriorityHigh   TaskPriority = "high"
	PriorityNormal TaskPriority = "normal"
	PriorityLow    TaskPriority = "low"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityUrgent, PriorityHigh, PriorityNormal, PriorityLow:
		return true
	}
	return false
}

// Task rows are hard-deleted. ProjectID is denormalized from the parent
// list at creation time so project-wide queries skip a join.
type Task struct {
	ID           uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Title        string       `gorm:"not null"`
	Description  string
	ListID       uuid.UUID    `gorm:"type:uuid;not null;index"`
	ProjectID    uuid.UUID    `gorm:"type:uuid;not null;index"`
	AssignedToID *uuid.UUID   `gorm:"type:uuid"`
	Status       TaskStatus   `gorm:"type:text;not null;default:'todo';check:status IN ('todo', 'in_progress', 'in_review', 'done')"`
	Priority     TaskPriority `gorm:"type:text;not null;default:'normal';check:priority IN ('urgent', 'high', 'normal', 'low')"`
	DueDate      *time.Time
	Order        int `gorm:"column:sort_order;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	List       TaskList `gorm:"foreignKey:ListID"`
	Project    Project  `gorm:"foreignKey:ProjectID"`
	AssignedTo *User    `gorm:"foreignKey:AssignedToID"`

	Subtasks    []Subtask    `gorm:"foreignKey:TaskID"`
	Comments    []Comment    `gorm:"foreignKey:TaskID"`
	Attachments []Attachment `gorm:"foreignKey:TaskID"`
}
