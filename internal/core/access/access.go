// Package access provides authorization decisions for board actions.
package access

import "boardhub/internal/core/domain"

// Action is the closed set of guarded board operations. Write covers
// every task and list mutation on the board.
type Action int

const (
	ActionRead Action = iota + 1
	ActionWrite
	ActionInvite
	ActionRemoveMember
	ActionDeleteBoard
)

// Request pairs an action with its parameters. TargetUserID is only
// consulted for ActionRemoveMember.
type Request struct {
	Action       Action
	TargetUserID string
}

// Evaluate reports whether the principal may perform the request on
// the board.
//
// Public boards grant write as well as read: isPublic widens "visible"
// all the way to "editable by any authenticated user". Kept as-is so
// canWrite stays equivalent to canRead; narrowing it is a product
// decision, not a bug fix.
func Evaluate(b domain.Board, principalID string, req Request) bool {
	switch req.Action {
	case ActionRead, ActionWrite:
		return b.IsPublic || b.IsMember(principalID)
	case ActionInvite:
		return b.IsMember(principalID)
	case ActionRemoveMember:
		if req.TargetUserID == b.OwnerID {
			return false
		}
		return principalID == b.OwnerID || principalID == req.TargetUserID
	case ActionDeleteBoard:
		return principalID == b.OwnerID
	default:
		return false
	}
}

// CanRead is shorthand for Evaluate with ActionRead.
func CanRead(b domain.Board, principalID string) bool {
	return Evaluate(b, principalID, Request{Action: ActionRead})
}

// CanWrite is shorthand for Evaluate with ActionWrite.
func CanWrite(b domain.Board, principalID string) bool {
	return Evaluate(b, principalID, Request{Action: ActionWrite})
}
