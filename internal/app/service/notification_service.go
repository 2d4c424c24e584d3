package service

import (
	"context"
	"fmt"
	"time"

	"boardhub/internal/core/domain"
	"boardhub/internal/core/ports"
)

type NotificationService struct {
	notifications ports.NotificationRepository

	now func() time.Time
}

var _ ports.NotificationService = (*NotificationService)(nil)

func NewNotificationService(notifications ports.NotificationRepository) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		now:           time.Now,
	}
}

func (s *NotificationService) ListForUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	return s.notifications.ListByRecipient(ctx, userID)
}

// MarkRead flags a notification as read. Only the recipient may do so;
// marking an already-read notification again keeps the original ReadAt.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID, userID string) (domain.Notification, error) {
	notification, err := s.notifications.GetByID(ctx, notificationID)
	if err != nil {
		return domain.Notification{}, err
	}
	if notification.RecipientID != userID {
		return domain.Notification{}, domain.ErrUnauthorized
	}
	if notification.IsRead {
		return notification, nil
	}

	now := s.now().UTC()
	notification.IsRead = true
	notification.ReadAt = &now
	if err := s.notifications.Update(ctx, notification); err != nil {
		return domain.Notification{}, fmt.Errorf("mark notification read: %w", err)
	}
	return notification, nil
}
