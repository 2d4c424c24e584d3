package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"boardhub/internal/core/domain"
	"boardhub/internal/core/ports"
)

const invitationColumns = `
id, board_id, inviter_id, invitee_id, role, status, message, created_at, expires_at, responded_at
`

type InvitationRepository struct {
	db *sqlx.DB
}

type invitationRow struct {
	ID          string         `db:"id"`
	BoardID     string         `db:"board_id"`
	InviterID   string         `db:"inviter_id"`
	InviteeID   string         `db:"invitee_id"`
	Role        string         `db:"role"`
	Status      string         `db:"status"`
	Message     sql.NullString `db:"message"`
	CreatedAt   time.Time      `db:"created_at"`
	ExpiresAt   time.Time      `db:"expires_at"`
	RespondedAt sql.NullTime   `db:"responded_at"`
}

var _ ports.InvitationRepository = (*InvitationRepository)(nil)

func NewInvitationRepository(db *sqlx.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

func (r *InvitationRepository) GetByID(ctx context.Context, id string) (domain.BoardInvitation, error) {
	var row invitationRow
	err := r.db.GetContext(ctx, &row,
		"SELECT"+invitationColumns+"FROM board_invitations WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.BoardInvitation{}, domain.ErrInvitationNotFound
		}
		return domain.BoardInvitation{}, err
	}
	return mapInvitationRow(row), nil
}

func (r *InvitationRepository) FindPending(ctx context.Context, boardID, inviteeID string) (domain.BoardInvitation, error) {
	var row invitationRow
	err := r.db.GetContext(ctx, &row,
		"SELECT"+invitationColumns+"FROM board_invitations WHERE board_id = ? AND invitee_id = ? AND status = ?",
		boardID, inviteeID, string(domain.InvitationStatusPending))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.BoardInvitation{}, domain.ErrInvitationNotFound
		}
		return domain.BoardInvitation{}, err
	}
	return mapInvitationRow(row), nil
}

func (r *InvitationRepository) ListByBoard(ctx context.Context, boardID string) ([]domain.BoardInvitation, error) {
	var rows []invitationRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT"+invitationColumns+"FROM board_invitations WHERE board_id = ? ORDER BY created_at, id", boardID)
	if err != nil {
		return nil, err
	}
	return mapInvitationRows(rows), nil
}

func (r *InvitationRepository) ListPendingByInvitee(ctx context.Context, inviteeID string) ([]domain.BoardInvitation, error) {
	var rows []invitationRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT"+invitationColumns+"FROM board_invitations WHERE invitee_id = ? AND status = ? ORDER BY created_at, id",
		inviteeID, string(domain.InvitationStatusPending))
	if err != nil {
		return nil, err
	}
	return mapInvitationRows(rows), nil
}

func (r *InvitationRepository) Create(ctx context.Context, invitation domain.BoardInvitation) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO board_invitations (id, board_id, inviter_id, invitee_id, role, status, message, created_at, expires_at, responded_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		invitation.ID, invitation.BoardID, invitation.InviterID, invitation.InviteeID,
		invitation.Role, string(invitation.Status), invitation.Message,
		invitation.CreatedAt, invitation.ExpiresAt, invitation.RespondedAt,
	)
	return err
}

func (r *InvitationRepository) Update(ctx context.Context, invitation domain.BoardInvitation) error {
	result, err := r.db.ExecContext(ctx, `
UPDATE board_invitations
SET status = ?, responded_at = ?
WHERE id = ?`,
		string(invitation.Status), invitation.RespondedAt, invitation.ID,
	)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		var count int
		if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM board_invitations WHERE id = ?", invitation.ID); err == nil && count == 0 {
			return domain.ErrInvitationNotFound
		}
	}
	return nil
}

func mapInvitationRows(rows []invitationRow) []domain.BoardInvitation {
	invitations := make([]domain.BoardInvitation, 0, len(rows))
	for _, row := range rows {
		invitations = append(invitations, mapInvitationRow(row))
	}
	return invitations
}

func mapInvitationRow(row invitationRow) domain.BoardInvitation {
	invitation := domain.BoardInvitation{
		ID:        row.ID,
		BoardID:   row.BoardID,
		InviterID: row.InviterID,
		InviteeID: row.InviteeID,
		Role:      row.Role,
		Status:    domain.InvitationStatus(row.Status),
		CreatedAt: row.CreatedAt,
		ExpiresAt: row.ExpiresAt,
	}
	if row.Message.Valid {
		value := row.Message.String
		invitation.Message = &value
	}
	if row.RespondedAt.Valid {
		value := row.RespondedAt.Time
		invitation.RespondedAt = &value
	}
	return invitation
}
