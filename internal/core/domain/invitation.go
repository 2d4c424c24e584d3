package domain

import "time"

type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusRejected InvitationStatus = "rejected"
	InvitationStatusExpired  InvitationStatus = "expired"
)

// InvitationTTL is how long an invitation stays open for a response.
const InvitationTTL = 7 * 24 * time.Hour

// BoardInvitation is a pending offer of board membership. Records are
// kept after resolution as an audit trail and are never deleted.
type BoardInvitation struct {
	ID          string
	BoardID     string
	InviterID   string
	InviteeID   string
	Role        string
	Status      InvitationStatus
	Message     *string
	CreatedAt   time.Time
	ExpiresAt   time.Time
	RespondedAt *time.Time
}

// IsExpired reports whether the invitation's response window has
// passed, independent of its persisted status.
func (i BoardInvitation) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

type CreateInvitationInput struct {
	BoardID string
	// Exactly one of Email or Username identifies the invitee.
	Email    string
	Username string
	Role     string
	Message  *string
}
