package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"boardhub/internal/core/access"
	"boardhub/internal/core/domain"
	"boardhub/internal/core/ports"
)

const defaultInvitationRole = "member"

// InvitationService owns the invitation lifecycle: creation, expiry
// detection and accept/reject transitions. Acceptance is the only path
// that grows a board's member set.
type InvitationService struct {
	boards      ports.BoardRepository
	invitations ports.InvitationRepository
	users       ports.UserRepository
	dispatcher  ports.NotificationDispatcher

	now   func() time.Time
	newID func() string
}

var _ ports.InvitationService = (*InvitationService)(nil)

func NewInvitationService(
	boards ports.BoardRepository,
	invitations ports.InvitationRepository,
	users ports.UserRepository,
	dispatcher ports.NotificationDispatcher,
) *InvitationService {
	return &InvitationService{
		boards:      boards,
		invitations: invitations,
		users:       users,
		dispatcher:  dispatcher,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

func (s *InvitationService) Invite(ctx context.Context, inviterID string, input domain.CreateInvitationInput) (domain.BoardInvitation, error) {
	board, err := s.boards.GetByID(ctx, input.BoardID)
	if err != nil {
		return domain.BoardInvitation{}, err
	}
	if !access.Evaluate(board, inviterID, access.Request{Action: access.ActionInvite}) {
		return domain.BoardInvitation{}, domain.ErrUnauthorized
	}

	invitee, err := s.resolveInvitee(ctx, input)
	if err != nil {
		return domain.BoardInvitation{}, err
	}
	if invitee.ID == inviterID {
		return domain.BoardInvitation{}, domain.ErrSelfInvite
	}
	if board.IsMember(invitee.ID) {
		return domain.BoardInvitation{}, domain.ErrAlreadyMember
	}

	// One pending invitation per (board, invitee) at a time.
	if _, err := s.invitations.FindPending(ctx, board.ID, invitee.ID); err == nil {
		return domain.BoardInvitation{}, domain.ErrDuplicateInvitation
	} else if !errors.Is(err, domain.ErrInvitationNotFound) {
		return domain.BoardInvitation{}, err
	}

	role := input.Role
	if role == "" {
		role = defaultInvitationRole
	}

	now := s.now().UTC()
	invitation := domain.BoardInvitation{
		ID:        s.newID(),
		BoardID:   board.ID,
		InviterID: inviterID,
		InviteeID: invitee.ID,
		Role:      role,
		Status:    domain.InvitationStatusPending,
		Message:   input.Message,
		CreatedAt: now,
		ExpiresAt: now.Add(domain.InvitationTTL),
	}
	if err := s.invitations.Create(ctx, invitation); err != nil {
		return domain.BoardInvitation{}, fmt.Errorf("create invitation: %w", err)
	}
	return invitation, nil
}

func (s *InvitationService) resolveInvitee(ctx context.Context, input domain.CreateInvitationInput) (domain.User, error) {
	if input.Email != "" {
		return s.users.GetByEmail(ctx, input.Email)
	}
	if input.Username != "" {
		return s.users.GetByUsername(ctx, input.Username)
	}
	return domain.User{}, domain.ErrUserNotFound
}

// Respond resolves a pending invitation. Pending is the only state a
// response can leave; accepted, rejected and expired are terminal, so
// a second response of any kind fails.
func (s *InvitationService) Respond(ctx context.Context, invitationID, responderID string, accept bool) error {
	invitation, err := s.invitations.GetByID(ctx, invitationID)
	if err != nil {
		return err
	}
	if invitation.InviteeID != responderID {
		return domain.ErrUnauthorized
	}
	if invitation.Status != domain.InvitationStatusPending {
		return domain.ErrInvitationNotPending
	}

	now := s.now().UTC()
	if invitation.IsExpired(now) {
		// Record the expiry, then reject the response: it arrived
		// after the window closed even if the caller did not know.
		invitation.Status = domain.InvitationStatusExpired
		if err := s.invitations.Update(ctx, invitation); err != nil {
			return fmt.Errorf("expire invitation: %w", err)
		}
		return domain.ErrInvitationExpired
	}

	board, err := s.boards.GetByID(ctx, invitation.BoardID)
	if err != nil {
		return err
	}

	invitation.RespondedAt = &now
	if accept {
		invitation.Status = domain.InvitationStatusAccepted
	} else {
		invitation.Status = domain.InvitationStatusRejected
	}
	if err := s.invitations.Update(ctx, invitation); err != nil {
		return fmt.Errorf("update invitation: %w", err)
	}

	if accept {
		board.AddMember(invitation.InviteeID)
		board.UpdatedAt = now
		if err := s.boards.Update(ctx, board); err != nil {
			return fmt.Errorf("add board member: %w", err)
		}
	}

	responder, err := s.users.GetByID(ctx, responderID)
	if err != nil {
		return err
	}
	inviter, err := s.users.GetByID(ctx, invitation.InviterID)
	if err != nil {
		return err
	}

	var event domain.Event
	if accept {
		event = domain.InvitationAcceptedEvent{
			Invitation: invitation,
			Board:      board,
			Responder:  responder,
			Inviter:    inviter,
		}
	} else {
		event = domain.InvitationRejectedEvent{
			Invitation: invitation,
			Board:      board,
			Responder:  responder,
			Inviter:    inviter,
		}
	}
	return s.dispatcher.Dispatch(ctx, event)
}

func (s *InvitationService) ListForBoard(ctx context.Context, boardID, principalID string) ([]domain.BoardInvitation, error) {
	board, err := s.boards.GetByID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if !access.Evaluate(board, principalID, access.Request{Action: access.ActionInvite}) {
		return nil, domain.ErrUnauthorized
	}
	return s.invitations.ListByBoard(ctx, boardID)
}

func (s *InvitationService) PendingForUser(ctx context.Context, userID string) ([]domain.BoardInvitation, error) {
	return s.invitations.ListPendingByInvitee(ctx, userID)
}
