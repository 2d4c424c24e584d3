package ports

import (
	"context"

	"boardhub/internal/core/domain"
)

type BoardService interface {
	CreateBoard(ctx context.Context, principalID string, input domain.CreateBoardInput) (domain.Board, error)
	GetBoard(ctx context.Context, boardID, principalID string) (domain.Board, error)
	ListBoards(ctx context.Context, principalID string) ([]domain.Board, error)
	UpdateBoard(ctx context.Context, boardID, principalID string, input domain.UpdateBoardInput) (domain.Board, error)
	DeleteBoard(ctx context.Context, boardID, principalID string) error
	RemoveMember(ctx context.Context, boardID, memberID, principalID string) error
}

type InvitationService interface {
	Invite(ctx context.Context, inviterID string, input domain.CreateInvitationInput) (domain.BoardInvitation, error)
	Respond(ctx context.Context, invitationID, responderID string, accept bool) error
	ListForBoard(ctx context.Context, boardID, principalID string) ([]domain.BoardInvitation, error)
	PendingForUser(ctx context.Context, userID string) ([]domain.BoardInvitation, error)
}

type TaskService interface {
	CreateTask(ctx context.Context, boardID, principalID string, input domain.CreateTaskInput) (domain.TaskItem, error)
	ListBoardTasks(ctx context.Context, boardID, principalID string) ([]domain.TaskItem, error)
	UpdateTask(ctx context.Context, taskID, principalID string, input domain.UpdateTaskInput) (domain.TaskItem, error)
	AssignTask(ctx context.Context, taskID, principalID string, assigneeID *string) (domain.TaskItem, error)
	ChangeTaskList(ctx context.Context, taskID, principalID string, listID *string) (domain.TaskItem, error)
	DeleteTask(ctx context.Context, taskID, principalID string) error
}

type ListService interface {
	CreateList(ctx context.Context, boardID, principalID string, input domain.CreateListInput) (domain.List, error)
	ListBoardLists(ctx context.Context, boardID, principalID string) ([]domain.List, error)
	UpdateList(ctx context.Context, listID, principalID string, input domain.UpdateListInput) (domain.List, error)
	DeleteList(ctx context.Context, listID, principalID string) error
}

type NotificationService interface {
	ListForUser(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, notificationID, userID string) (domain.Notification, error)
}

// NotificationDispatcher turns a domain event into a persisted
// notification plus a best-effort email. Dispatch fails only when the
// notification row cannot be written; email delivery never surfaces.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, event domain.Event) error
}
