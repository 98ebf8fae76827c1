package repository

import (
	"context"
	"errors"

	"taskhub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskListRepository struct {
	db *gorm.DB
}

func NewTaskListRepository(db *gorm.DB) *TaskListRepository {
	return &TaskListRepository{db: db}
}

func (r *TaskListRepository) Create(ctx context.Context, list *model.TaskList) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *TaskListRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.TaskList, error) {
	var list model.TaskList
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&list).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTaskListNotFound
	}
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *TaskListRepository) GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]model.TaskList, error) {
	var lists []model.TaskList
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND is_active = ?", projectID, true).
		Order("sort_order").
		Find(&lists).Error
	return lists, err
}

// GetMaxOrder returns 0 when the project has no active lists.
func (r *TaskListRepository) GetMaxOrder(ctx context.Context, projectID uuid.UUID) (int, error) {
	var maxOrder struct {
		Max int
	}
	err := r.db.WithContext(ctx).Model(&model.TaskList{}).
		Select("COALESCE(MAX(sort_order), 0) as max").
		Where("project_id = ? AND is_active = ?", projectID, true).
		Scan(&maxOrder).Error
	return maxOrder.Max, err
}

func (r *TaskListRepository) Update(ctx context.Context, list *model.TaskList) error {
	result := r.db.WithContext(ctx).Save(list)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskListNotFound
	}
	return nil
}

func (r *TaskListRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.TaskList{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskListNotFound
	}
	return nil
}
