package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"taskhub/internal/model"
	"taskhub/internal/repository"

	"github.com/robfig/cron/v3"
)

type TaskSource interface {
	GetDueOn(ctx context.Context, day time.Time) ([]model.Task, error)
}

type NotificationSink interface {
	Create(ctx context.Context, notification *model.Notification) error
}

var (
	_ TaskSource       = (*repository.TaskRepository)(nil)
	_ NotificationSink = (*repository.NotificationRepository)(nil)
)

// Reminder notifies assignees about tasks due today. The schedule is a
// standard cron expression, typically once every morning.
type Reminder struct {
	cron          *cron.Cron
	tasks         TaskSource
	notifications NotificationSink
}

func NewReminder(spec string, tasks TaskSource, notifications NotificationSink) (*Reminder, error) {
	r := &Reminder{
		cron:          cron.New(),
		tasks:         tasks,
		notifications: notifications,
	}

	if _, err := r.cron.AddFunc(spec, r.run); err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", spec, err)
	}
	return r, nil
}

func (r *Reminder) Start() {
	r.cron.Start()
}

func (r *Reminder) Stop() {
	r.cron.Stop()
}

func (r *Reminder) run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	tasks, err := r.tasks.GetDueOn(ctx, time.Now())
	if err != nil {
		log.Printf("reminder: failed to load due tasks: %v", err)
		return
	}

	for _, task := range tasks {
		if task.AssignedToID == nil {
			continue
		}
		err := r.notifications.Create(ctx, &model.Notification{
			Title:     "Task due today",
			Message:   fmt.Sprintf("Task '%s' is due today", task.Title),
			UserID:    *task.AssignedToID,
			TaskID:    &task.ID,
			ProjectID: &task.ProjectID,
		})
		if err != nil {
			log.Printf("reminder: failed to notify for task %s: %v", task.ID, err)
		}
	}
}
