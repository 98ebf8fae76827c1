package repository

import (
	"context"
	"errors"

	"taskhub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkspaceUserRepository struct {
	db *gorm.DB
}

func NewWorkspaceUserRepository(db *gorm.DB) *WorkspaceUserRepository {
	return &WorkspaceUserRepository{db: db}
}

func (r *WorkspaceUserRepository) Add(ctx context.Context, member *model.WorkspaceUser) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *WorkspaceUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.WorkspaceUser, error) {
	var member model.WorkspaceUser
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrWorkspaceUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByWorkspaceAndUser returns (nil, nil) when the user has no active
// membership, so callers can distinguish "not a member" from a DB error.
func (r *WorkspaceUserRepository) GetByWorkspaceAndUser(ctx context.Context, workspaceID, userID uuid.UUID) (*model.WorkspaceUser, error) {
	var member model.WorkspaceUser
	err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND user_id = ? AND is_active = ?", workspaceID, userID, true).
		First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *WorkspaceUserRepository) GetMembers(ctx context.Context, workspaceID uuid.UUID) ([]model.WorkspaceUser, error) {
	var members []model.WorkspaceUser
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("workspace_id = ? AND is_active = ?", workspaceID, true).
		Order("joined_at").
		Find(&members).Error
	return members, err
}

func (r *WorkspaceUserRepository) Update(ctx context.Context, member *model.WorkspaceUser) error {
	result := r.db.WithContext(ctx).Save(member)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWorkspaceUserNotFound
	}
	return nil
}

// Remove soft-deletes the membership row.
func (r *WorkspaceUserRepository) Remove(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.WorkspaceUser{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWorkspaceUserNotFound
	}
	return nil
}
