package repository

import (
	"context"
	"errors"

	"taskhub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubtaskRepository struct {
	db *gorm.DB
}

func NewSubtaskRepository(db *gorm.DB) *SubtaskRepository {
	return &SubtaskRepository{db: db}
}

func (r *SubtaskRepository) Create(ctx context.Context, subtask *model.Subtask) error {
	return r.db.WithContext(ctx).Create(subtask).Error
}

func (r *SubtaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Subtask, error) {
	var subtask model.Subtask
	err := r.db.WithContext(ctx).First(&subtask, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSubtaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return &subtask, nil
}

func (r *SubtaskRepository) GetByTaskID(ctx context.Context, taskID uuid.UUID) ([]model.Subtask, error) {
	var subtasks []model.Subtask
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("sort_order").
		Find(&subtasks).Error
	return subtasks, err
}

func (r *SubtaskRepository) GetMaxOrder(ctx context.Context, taskID uuid.UUID) (int, error) {
	var maxOrder struct {
		Max int
	}
	err := r.db.WithContext(ctx).Model(&model.Subtask{}).
		Select("COALESCE(MAX(sort_order), 0) as max").
		Where("task_id = ?", taskID).
		Scan(&maxOrder).Error
	return maxOrder.Max, err
}

func (r *SubtaskRepository) Update(ctx context.Context, subtask *model.Subtask) error {
	result := r.db.WithContext(ctx).Save(subtask)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSubtaskNotFound
	}
	return nil
}

func (r *SubtaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Subtask{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSubtaskNotFound
	}
	return nil
}
