package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"boardhub/internal/core/domain"
	"boardhub/internal/core/ports"
)

type NotificationRepository struct {
	db *sqlx.DB
}

type notificationRow struct {
	ID          string       `db:"id"`
	RecipientID string       `db:"recipient_id"`
	Type        string       `db:"type"`
	Title       string       `db:"title"`
	Message     string       `db:"message"`
	Data        []byte       `db:"data"`
	IsRead      bool         `db:"is_read"`
	CreatedAt   time.Time    `db:"created_at"`
	ReadAt      sql.NullTime `db:"read_at"`
}

var _ ports.NotificationRepository = (*NotificationRepository)(nil)

func NewNotificationRepository(db *sqlx.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) GetByID(ctx context.Context, id string) (domain.Notification, error) {
	var row notificationRow
	err := r.db.GetContext(ctx, &row, `
SELECT id, recipient_id, type, title, message, data, is_read, created_at, read_at
FROM notifications
WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Notification{}, domain.ErrNotificationNotFound
		}
		return domain.Notification{}, err
	}
	return mapNotificationRow(row)
}

func (r *NotificationRepository) ListByRecipient(ctx context.Context, recipientID string) ([]domain.Notification, error) {
	var rows []notificationRow
	err := r.db.SelectContext(ctx, &rows, `
SELECT id, recipient_id, type, title, message, data, is_read, created_at, read_at
FROM notifications
WHERE recipient_id = ?
ORDER BY created_at DESC, id`, recipientID)
	if err != nil {
		return nil, err
	}

	notifications := make([]domain.Notification, 0, len(rows))
	for _, row := range rows {
		notification, err := mapNotificationRow(row)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, notification)
	}
	return notifications, nil
}

func (r *NotificationRepository) Create(ctx context.Context, notification domain.Notification) error {
	data, err := json.Marshal(notification.Data)
	if err != nil {
		return fmt.Errorf("marshal notification data: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO notifications (id, recipient_id, type, title, message, data, is_read, created_at, read_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		notification.ID, notification.RecipientID, string(notification.Type),
		notification.Title, notification.Message, data, notification.IsRead,
		notification.CreatedAt, notification.ReadAt,
	)
	return err
}

func (r *NotificationRepository) Update(ctx context.Context, notification domain.Notification) error {
	result, err := r.db.ExecContext(ctx, `
UPDATE notifications
SET is_read = ?, read_at = ?
WHERE id = ?`,
		notification.IsRead, notification.ReadAt, notification.ID,
	)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		var count int
		if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM notifications WHERE id = ?", notification.ID); err == nil && count == 0 {
			return domain.ErrNotificationNotFound
		}
	}
	return nil
}

func mapNotificationRow(row notificationRow) (domain.Notification, error) {
	notification := domain.Notification{
		ID:          row.ID,
		RecipientID: row.RecipientID,
		Type:        domain.NotificationType(row.Type),
		Title:       row.Title,
		Message:     row.Message,
		IsRead:      row.IsRead,
		CreatedAt:   row.CreatedAt,
	}
	if row.ReadAt.Valid {
		value := row.ReadAt.Time
		notification.ReadAt = &value
	}

	data, err := unmarshalNotificationData(notification.Type, row.Data)
	if err != nil {
		return domain.Notification{}, err
	}
	notification.Data = data
	return notification, nil
}

// unmarshalNotificationData decodes the payload column into the typed
// variant matching the notification type.
func unmarshalNotificationData(kind domain.NotificationType, raw []byte) (domain.NotificationData, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	switch kind {
	case domain.NotificationTaskAssigned:
		var data domain.TaskAssignedData
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("unmarshal notification data: %w", err)
		}
		return data, nil
	case domain.NotificationInvitationAccepted:
		var data domain.InvitationAcceptedData
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("unmarshal notification data: %w", err)
		}
		return data, nil
	case domain.NotificationInvitationRejected:
		var data domain.InvitationRejectedData
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("unmarshal notification data: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown notification type %q", kind)
	}
}
