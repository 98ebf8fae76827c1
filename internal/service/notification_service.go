package service

import (
	"context"
	"time"

	"taskhub/internal/model"
	"taskhub/internal/repository"

	"github.com/google/uuid"
)

type NotificationService struct {
	notifications NotificationRepository
}

func NewNotificationService(notifications NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

func (s *NotificationService) ListForUser(ctx context.Context, userID uuid.UUID) ([]NotificationDto, error) {
	notifications, err := s.notifications.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapNotificationsToDtos(notifications), nil
}

func (s *NotificationService) Unread(ctx context.Context, userID uuid.UUID) ([]NotificationDto, error) {
	notifications, err := s.notifications.GetUnread(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapNotificationsToDtos(notifications), nil
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notifications.CountUnread(ctx, userID)
}

// MarkRead is scoped to the recipient; other users see not-found.
func (s *NotificationService) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	notification, err := s.notifications.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if notification.UserID != userID {
		return repository.ErrNotificationNotFound
	}
	if notification.IsRead {
		return nil
	}

	now := time.Now()
	notification.IsRead = true
	notification.ReadAt = &now
	return s.notifications.Update(ctx, notification)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	unread, err := s.notifications.GetUnread(ctx, userID)
	if err != nil {
		return err
	}

	now := time.Now()
	for i := range unread {
		unread[i].IsRead = true
		unread[i].ReadAt = &now
		if err := s.notifications.Update(ctx, &unread[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *NotificationService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	notification, err := s.notifications.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if notification.UserID != userID {
		return repository.ErrNotificationNotFound
	}
	return s.notifications.Delete(ctx, id)
}

func mapNotificationsToDtos(notifications []model.Notification) []NotificationDto {
	dtos := make([]NotificationDto, len(notifications))
	for i, n := range notifications {
		dtos[i] = NotificationDto{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			TaskID:    n.TaskID,
			ProjectID: n.ProjectID,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
			ReadAt:    n.ReadAt,
		}
	}
	return dtos
}
