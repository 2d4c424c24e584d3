package domain

import "errors"

var (
	ErrBoardNotFound        = errors.New("board not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrListNotFound         = errors.New("list not found")
	ErrInvitationNotFound   = errors.New("invitation not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrUnauthorized = errors.New("unauthorized")

	ErrSelfInvite           = errors.New("cannot invite yourself")
	ErrAlreadyMember        = errors.New("user is already a board member")
	ErrDuplicateInvitation  = errors.New("a pending invitation already exists")
	ErrInvitationNotPending = errors.New("invitation is no longer pending")
	ErrInvitationExpired    = errors.New("invitation has expired")
	ErrAssigneeNotMember    = errors.New("assignee is not a board member")
	ErrTaskCompleted        = errors.New("completed tasks cannot be deleted")
	ErrOwnerCannotBeRemoved = errors.New("board owner cannot be removed")
)

// ErrorKind groups the sentinel errors above for boundary mapping.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNotFound
	KindUnauthorized
	KindConflict
)

// KindOf classifies an error into its taxonomy bucket. Unrecognized
// errors map to KindUnknown and should be treated as internal.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrBoardNotFound),
		errors.Is(err, ErrTaskNotFound),
		errors.Is(err, ErrListNotFound),
		errors.Is(err, ErrInvitationNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrNotificationNotFound):
		return KindNotFound
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrSelfInvite),
		errors.Is(err, ErrAlreadyMember),
		errors.Is(err, ErrDuplicateInvitation),
		errors.Is(err, ErrInvitationNotPending),
		errors.Is(err, ErrInvitationExpired),
		errors.Is(err, ErrAssigneeNotMember),
		errors.Is(err, ErrTaskCompleted),
		errors.Is(err, ErrOwnerCannotBeRemoved):
		return KindConflict
	default:
		return KindUnknown
	}
}
