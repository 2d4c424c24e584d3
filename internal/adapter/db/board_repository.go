package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"boardhub/internal/core/domain"
	"boardhub/internal/core/ports"
)

const getBoardQuery = `
SELECT id, title, description, owner_id, is_public, is_archived, columns, created_at, updated_at
FROM boards
WHERE id = ?;
`

const listBoardsForUserQuery = `
SELECT DISTINCT b.id, b.title, b.description, b.owner_id, b.is_public, b.is_archived, b.columns, b.created_at, b.updated_at
FROM boards b
LEFT JOIN board_members m ON m.board_id = b.id
WHERE b.owner_id = ? OR m.user_id = ?
ORDER BY b.created_at, b.id;
`

type BoardRepository struct {
	db *sqlx.DB
}

type boardRow struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	OwnerID     string         `db:"owner_id"`
	IsPublic    bool           `db:"is_public"`
	IsArchived  bool           `db:"is_archived"`
	Columns     []byte         `db:"columns"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.BoardRepository = (*BoardRepository)(nil)

func NewBoardRepository(db *sqlx.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

func (r *BoardRepository) GetByID(ctx context.Context, id string) (domain.Board, error) {
	var row boardRow
	if err := r.db.GetContext(ctx, &row, getBoardQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Board{}, domain.ErrBoardNotFound
		}
		return domain.Board{}, err
	}

	board, err := mapBoardRow(row)
	if err != nil {
		return domain.Board{}, err
	}

	members, err := r.loadMembers(ctx, id)
	if err != nil {
		return domain.Board{}, err
	}
	board.Members = members
	return board, nil
}

func (r *BoardRepository) ListForUser(ctx context.Context, userID string) ([]domain.Board, error) {
	var rows []boardRow
	if err := r.db.SelectContext(ctx, &rows, listBoardsForUserQuery, userID, userID); err != nil {
		return nil, err
	}

	boards := make([]domain.Board, 0, len(rows))
	for _, row := range rows {
		board, err := mapBoardRow(row)
		if err != nil {
			return nil, err
		}
		members, err := r.loadMembers(ctx, board.ID)
		if err != nil {
			return nil, err
		}
		board.Members = members
		boards = append(boards, board)
	}
	return boards, nil
}

func (r *BoardRepository) Create(ctx context.Context, board domain.Board) error {
	columns, err := json.Marshal(board.Columns)
	if err != nil {
		return fmt.Errorf("marshal columns: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer rollback(tx)

	_, err = tx.ExecContext(ctx, `
INSERT INTO boards (id, title, description, owner_id, is_public, is_archived, columns, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		board.ID, board.Title, board.Description, board.OwnerID,
		board.IsPublic, board.IsArchived, columns, board.CreatedAt, board.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if err := replaceMembers(ctx, tx, board.ID, board.Members); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *BoardRepository) Update(ctx context.Context, board domain.Board) error {
	columns, err := json.Marshal(board.Columns)
	if err != nil {
		return fmt.Errorf("marshal columns: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer rollback(tx)

	result, err := tx.ExecContext(ctx, `
UPDATE boards
SET title = ?, description = ?, is_public = ?, is_archived = ?, columns = ?, updated_at = ?
WHERE id = ?`,
		board.Title, board.Description, board.IsPublic, board.IsArchived,
		columns, board.UpdatedAt, board.ID,
	)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		if exists, checkErr := boardExists(ctx, tx, board.ID); checkErr == nil && !exists {
			return domain.ErrBoardNotFound
		}
	}
	if err := replaceMembers(ctx, tx, board.ID, board.Members); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *BoardRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM boards WHERE id = ?", id)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return domain.ErrBoardNotFound
	}
	return nil
}

func (r *BoardRepository) loadMembers(ctx context.Context, boardID string) ([]string, error) {
	members := []string{}
	err := r.db.SelectContext(ctx, &members,
		"SELECT user_id FROM board_members WHERE board_id = ? ORDER BY added_at, user_id", boardID)
	if err != nil {
		return nil, err
	}
	return members, nil
}

func replaceMembers(ctx context.Context, tx *sqlx.Tx, boardID string, members []string) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM board_members WHERE board_id = ?", boardID); err != nil {
		return err
	}
	for _, userID := range members {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO board_members (board_id, user_id, added_at) VALUES (?, ?, NOW())",
			boardID, userID)
		if err != nil {
			return err
		}
	}
	return nil
}

func boardExists(ctx context.Context, tx *sqlx.Tx, id string) (bool, error) {
	var count int
	if err := tx.GetContext(ctx, &count, "SELECT COUNT(*) FROM boards WHERE id = ?", id); err != nil {
		return false, err
	}
	return count > 0, nil
}

func rollback(tx *sqlx.Tx) {
	// Rollback after Commit is a no-op failure; nothing to log.
	_ = tx.Rollback()
}

func mapBoardRow(row boardRow) (domain.Board, error) {
	board := domain.Board{
		ID:         row.ID,
		Title:      row.Title,
		OwnerID:    row.OwnerID,
		IsPublic:   row.IsPublic,
		IsArchived: row.IsArchived,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
	if row.Description.Valid {
		value := row.Description.String
		board.Description = &value
	}
	if len(row.Columns) > 0 {
		if err := json.Unmarshal(row.Columns, &board.Columns); err != nil {
			return domain.Board{}, fmt.Errorf("unmarshal columns: %w", err)
		}
	}
	return board, nil
}
