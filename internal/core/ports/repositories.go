package ports

import (
	"context"

	"boardhub/internal/core/domain"
)

// Repositories return the matching domain.Err*NotFound sentinel when
// the target row does not exist.

type UserRepository interface {
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
}

type BoardRepository interface {
	GetByID(ctx context.Context, id string) (domain.Board, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Board, error)
	Create(ctx context.Context, board domain.Board) error
	Update(ctx context.Context, board domain.Board) error
	Delete(ctx context.Context, id string) error
}

type InvitationRepository interface {
	GetByID(ctx context.Context, id string) (domain.BoardInvitation, error)
	// FindPending returns the pending invitation for the (board,
	// invitee) pair, or ErrInvitationNotFound when none exists.
	FindPending(ctx context.Context, boardID, inviteeID string) (domain.BoardInvitation, error)
	ListByBoard(ctx context.Context, boardID string) ([]domain.BoardInvitation, error)
	ListPendingByInvitee(ctx context.Context, inviteeID string) ([]domain.BoardInvitation, error)
	Create(ctx context.Context, invitation domain.BoardInvitation) error
	Update(ctx context.Context, invitation domain.BoardInvitation) error
}

type TaskRepository interface {
	GetByID(ctx context.Context, id string) (domain.TaskItem, error)
	ListByBoard(ctx context.Context, boardID string) ([]domain.TaskItem, error)
	Create(ctx context.Context, task domain.TaskItem) error
	Update(ctx context.Context, task domain.TaskItem) error
	Delete(ctx context.Context, id string) error
}

type ListRepository interface {
	GetByID(ctx context.Context, id string) (domain.List, error)
	ListByBoard(ctx context.Context, boardID string) ([]domain.List, error)
	Create(ctx context.Context, list domain.List) error
	Update(ctx context.Context, list domain.List) error
	Delete(ctx context.Context, id string) error
}

type NotificationRepository interface {
	GetByID(ctx context.Context, id string) (domain.Notification, error)
	ListByRecipient(ctx context.Context, recipientID string) ([]domain.Notification, error)
	Create(ctx context.Context, notification domain.Notification) error
	Update(ctx context.Context, notification domain.Notification) error
}
