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

const getListQuery = `
SELECT id, board_id, title, sort_order, items, notes, created_at, updated_at
FROM lists
WHERE id = ?;
`

const listsByBoardQuery = `
SELECT id, board_id, title, sort_order, items, notes, created_at, updated_at
FROM lists
WHERE board_id = ?
ORDER BY sort_order, created_at, id;
`

type ListRepository struct {
	db *sqlx.DB
}

type listRow struct {
	ID        string         `db:"id"`
	BoardID   string         `db:"board_id"`
	Title     string         `db:"title"`
	SortOrder int            `db:"sort_order"`
	Items     []byte         `db:"items"`
	Notes     sql.NullString `db:"notes"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

var _ ports.ListRepository = (*ListRepository)(nil)

func NewListRepository(db *sqlx.DB) *ListRepository {
	return &ListRepository{db: db}
}

func (r *ListRepository) GetByID(ctx context.Context, id string) (domain.List, error) {
	var row listRow
	if err := r.db.GetContext(ctx, &row, getListQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.List{}, domain.ErrListNotFound
		}
		return domain.List{}, err
	}
	return mapListRow(row)
}

func (r *ListRepository) ListByBoard(ctx context.Context, boardID string) ([]domain.List, error) {
	var rows []listRow
	if err := r.db.SelectContext(ctx, &rows, listsByBoardQuery, boardID); err != nil {
		return nil, err
	}

	lists := make([]domain.List, 0, len(rows))
	for _, row := range rows {
		list, err := mapListRow(row)
		if err != nil {
			return nil, err
		}
		lists = append(lists, list)
	}
	return lists, nil
}

func (r *ListRepository) Create(ctx context.Context, list domain.List) error {
	items, err := json.Marshal(list.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO lists (id, board_id, title, sort_order, items, notes, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		list.ID, list.BoardID, list.Title, list.Order, items, list.Notes,
		list.CreatedAt, list.UpdatedAt,
	)
	return err
}

func (r *ListRepository) Update(ctx context.Context, list domain.List) error {
	items, err := json.Marshal(list.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}

	result, err := r.db.ExecContext(ctx, `
UPDATE lists
SET title = ?, sort_order = ?, items = ?, notes = ?, updated_at = ?
WHERE id = ?`,
		list.Title, list.Order, items, list.Notes, list.UpdatedAt, list.ID,
	)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		var count int
		if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM lists WHERE id = ?", list.ID); err == nil && count == 0 {
			return domain.ErrListNotFound
		}
	}
	return nil
}

func (r *ListRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM lists WHERE id = ?", id)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return domain.ErrListNotFound
	}
	return nil
}

func mapListRow(row listRow) (domain.List, error) {
	list := domain.List{
		ID:        row.ID,
		BoardID:   row.BoardID,
		Title:     row.Title,
		Order:     row.SortOrder,
		Items:     []domain.ListItem{},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.Notes.Valid {
		value := row.Notes.String
		list.Notes = &value
	}
	if len(row.Items) > 0 {
		if err := json.Unmarshal(row.Items, &list.Items); err != nil {
			return domain.List{}, fmt.Errorf("unmarshal items: %w", err)
		}
	}
	return list, nil
}
