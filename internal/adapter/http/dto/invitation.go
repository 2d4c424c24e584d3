package dto

type Invitation struct {
	ID          string  `json:"id"`
	BoardID     string  `json:"board_id"`
	InviterID   string  `json:"inviter_id"`
	InviteeID   string  `json:"invitee_id"`
	Role        string  `json:"role"`
	Status      string  `json:"status"`
	Message     *string `json:"message,omitempty"`
	CreatedAt   string  `json:"created_at"`
	ExpiresAt   string  `json:"expires_at"`
	RespondedAt *string `json:"responded_at,omitempty"`
}

// CreateInvitationRequest identifies the invitee by email or username,
// exactly one of the two.
type CreateInvitationRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Username *string `json:"username" binding:"omitempty,max=100"`
	Role     *string `json:"role" binding:"omitempty,oneof=member"`
	Message  *string `json:"message" binding:"omitempty,max=1000"`
}

type RespondInvitationRequest struct {
	Accept *bool `json:"accept" binding:"required"`
}
