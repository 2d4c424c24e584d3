package domain

import "time"

type Board struct {
	ID          string
	Title       string
	Description *string
	OwnerID     string
	Members     []string
	IsPublic    bool
	IsArchived  bool
	Columns     []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsMember reports whether the user belongs to the board. The owner is
// implicitly a member even when absent from Members.
func (b Board) IsMember(userID string) bool {
	if userID == b.OwnerID {
		return true
	}
	for _, id := range b.Members {
		if id == userID {
			return true
		}
	}
	return false
}

// AddMember appends the user to Members if not already present.
func (b *Board) AddMember(userID string) {
	if b.IsMember(userID) {
		return
	}
	b.Members = append(b.Members, userID)
}

// RemoveMember drops the user from Members. Removing the owner is a
// no-op; callers guard that case before mutating.
func (b *Board) RemoveMember(userID string) {
	for i, id := range b.Members {
		if id == userID {
			b.Members = append(b.Members[:i], b.Members[i+1:]...)
			return
		}
	}
}

type CreateBoardInput struct {
	Title       string
	Description *string
	IsPublic    bool
	Columns     []string
}

type UpdateBoardInput struct {
	Title       *string
	Description *string
	IsPublic    *bool
	IsArchived  *bool
	Columns     []string
	ColumnsSet  bool
}
