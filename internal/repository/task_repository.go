package repository

import (
	"context"
	"errors"
	"time"

	"taskhub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetDetail loads a task with its subtasks, comments and attachments.
func (r *TaskRepository) GetDetail(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Preload("Subtasks", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at") }).
		Preload("Comments.Author").
		Preload("Attachments").
		Preload("AssignedTo").
		First(&task, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) GetByListID(ctx context.Context, listID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Preload("Subtasks").
		Where("list_id = ?", listID).
		Order("sort_order").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Preload("Subtasks").
		Where("project_id = ?", projectID).
		Order("sort_order").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) GetByAssignee(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Preload("Subtasks").
		Where("assigned_to_id = ?", userID).
		Order("due_date ASC NULLS LAST").
		Find(&tasks).Error
	return tasks, err
}

// GetDueOn returns assigned, unfinished tasks whose due date falls on the
// given calendar day.
func (r *TaskRepository) GetDueOn(ctx context.Context, day time.Time) ([]model.Task, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("due_date >= ? AND due_date < ?", start, end).
		Where("status <> ?", model.StatusDone).
		Where("assigned_to_id IS NOT NULL").
		Find(&tasks).Error
	return tasks, err
}

// GetMaxOrder returns 0 when the list has no tasks.
func (r *TaskRepository) GetMaxOrder(ctx context.Context, listID uuid.UUID) (int, error) {
	var maxOrder struct {
		Max int
	}
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Select("COALESCE(MAX(sort_order), 0) as max").
		Where("list_id = ?", listID).
		Scan(&maxOrder).Error
	return maxOrder.Max, err
}

func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	result := r.db.WithContext(ctx).Save(task)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Move places a task at newOrder inside targetListID, shifting the orders
// of its old and new siblings inside a single transaction.
func (r *TaskRepository) Move(ctx context.Context, taskID, targetListID uuid.UUID, newOrder int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var task model.Task
		if err := tx.First(&task, "id = ?", taskID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTaskNotFound
			}
			return err
		}

		oldListID := task.ListID
		oldOrder := task.Order

		if oldListID != targetListID {
			// Close the gap in the old list.
			if err := tx.Model(&model.Task{}).
				Where("list_id = ? AND sort_order > ?", oldListID, oldOrder).
				Update("sort_order", gorm.Expr("sort_order - 1")).Error; err != nil {
				return err
			}

			// Open a gap in the target list.
			if err := tx.Model(&model.Task{}).
				Where("list_id = ? AND sort_order >= ?", targetListID, newOrder).
				Update("sort_order", gorm.Expr("sort_order + 1")).Error; err != nil {
				return err
			}

			task.ListID = targetListID
			task.Order = newOrder
		} else if oldOrder != newOrder {
			if oldOrder < newOrder {
				if err := tx.Model(&model.Task{}).
					Where("list_id = ? AND sort_order > ? AND sort_order <= ?", targetListID, oldOrder, newOrder).
					Update("sort_order", gorm.Expr("sort_order - 1")).Error; err != nil {
					return err
				}
			} else {
				if err := tx.Model(&model.Task{}).
					Where("list_id = ? AND sort_order >= ? AND sort_order < ?", targetListID, newOrder, oldOrder).
					Update("sort_order", gorm.Expr("sort_order + 1")).Error; err != nil {
					return err
				}
			}

			task.Order = newOrder
		}

		return tx.Save(&task).Error
	})
}
