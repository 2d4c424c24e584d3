package mapper

import (
	"time"

	"boardhub/internal/adapter/http/dto"
	"boardhub/internal/core/domain"
)

func ToNotifications(notifications []domain.Notification) []dto.Notification {
	items := make([]dto.Notification, 0, len(notifications))
	for _, notification := range notifications {
		items = append(items, ToNotification(notification))
	}
	return items
}

func ToNotification(notification domain.Notification) dto.Notification {
	item := dto.Notification{
		ID:        notification.ID,
		Type:      string(notification.Type),
		Title:     notification.Title,
		Message:   notification.Message,
		Data:      notification.Data,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt.Format(time.RFC3339),
	}

	if notification.ReadAt != nil {
		value := notification.ReadAt.Format(time.RFC3339)
		item.ReadAt = &value
	}

	return item
}
