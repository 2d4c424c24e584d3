package mapper

import (
	"time"

	"boardhub/internal/adapter/http/dto"
	"boardhub/internal/core/domain"
)

func ToInvitations(invitations []domain.BoardInvitation) []dto.Invitation {
	items := make([]dto.Invitation, 0, len(invitations))
	for _, invitation := range invitations {
		items = append(items, ToInvitation(invitation))
	}
	return items
}

func ToInvitation(invitation domain.BoardInvitation) dto.Invitation {
	item := dto.Invitation{
		ID:        invitation.ID,
		BoardID:   invitation.BoardID,
		InviterID: invitation.InviterID,
		InviteeID: invitation.InviteeID,
		Role:      invitation.Role,
		Status:    string(invitation.Status),
		CreatedAt: invitation.CreatedAt.Format(time.RFC3339),
		ExpiresAt: invitation.ExpiresAt.Format(time.RFC3339),
	}

	if invitation.Message != nil {
		value := *invitation.Message
		item.Message = &value
	}

	if invitation.RespondedAt != nil {
		value := invitation.RespondedAt.Format(time.RFC3339)
		item.RespondedAt = &value
	}

	return item
}
