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

const getTaskQuery = `
SELECT id, board_id, list_id, title, description, status, priority, tags,
       assigned_to_id, created_by_id, due_date, is_completed, completed_at,
       completed_by, created_at, updated_at
FROM tasks
WHERE id = ?;
`

const listTasksByBoardQuery = `
SELECT id, board_id, list_id, title, description, status, priority, tags,
       assigned_to_id, created_by_id, due_date, is_completed, completed_at,
       completed_by, created_at, updated_at
FROM tasks
WHERE board_id = ?
ORDER BY created_at, id;
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID           string         `db:"id"`
	BoardID      string         `db:"board_id"`
	ListID       sql.NullString `db:"list_id"`
	Title        string         `db:"title"`
	Description  sql.NullString `db:"description"`
	Status       string         `db:"status"`
	Priority     string         `db:"priority"`
	Tags         []byte         `db:"tags"`
	AssignedToID sql.NullString `db:"assigned_to_id"`
	CreatedByID  string         `db:"created_by_id"`
	DueDate      sql.NullTime   `db:"due_date"`
	IsCompleted  bool           `db:"is_completed"`
	CompletedAt  sql.NullTime   `db:"completed_at"`
	CompletedBy  sql.NullString `db:"completed_by"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (domain.TaskItem, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.TaskItem{}, domain.ErrTaskNotFound
		}
		return domain.TaskItem{}, err
	}
	return mapTaskRow(row)
}

func (r *TaskRepository) ListByBoard(ctx context.Context, boardID string) ([]domain.TaskItem, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksByBoardQuery, boardID); err != nil {
		return nil, err
	}

	tasks := make([]domain.TaskItem, 0, len(rows))
	for _, row := range rows {
		task, err := mapTaskRow(row)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (r *TaskRepository) Create(ctx context.Context, task domain.TaskItem) error {
	tags, err := json.Marshal(task.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO tasks (id, board_id, list_id, title, description, status, priority, tags,
                   assigned_to_id, created_by_id, due_date, is_completed, completed_at,
                   completed_by, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.BoardID, task.ListID, task.Title, task.Description,
		string(task.Status), string(task.Priority), tags,
		task.AssignedToID, task.CreatedByID, task.DueDate,
		task.IsCompleted, task.CompletedAt, task.CompletedBy,
		task.CreatedAt, task.UpdatedAt,
	)
	return err
}

func (r *TaskRepository) Update(ctx context.Context, task domain.TaskItem) error {
	tags, err := json.Marshal(task.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	result, err := r.db.ExecContext(ctx, `
UPDATE tasks
SET list_id = ?, title = ?, description = ?, status = ?, priority = ?, tags = ?,
    assigned_to_id = ?, due_date = ?, is_completed = ?, completed_at = ?,
    completed_by = ?, updated_at = ?
WHERE id = ?`,
		task.ListID, task.Title, task.Description, string(task.Status),
		string(task.Priority), tags, task.AssignedToID, task.DueDate,
		task.IsCompleted, task.CompletedAt, task.CompletedBy,
		task.UpdatedAt, task.ID,
	)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		var count int
		if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM tasks WHERE id = ?", task.ID); err == nil && count == 0 {
			return domain.ErrTaskNotFound
		}
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func mapTaskRow(row taskRow) (domain.TaskItem, error) {
	task := domain.TaskItem{
		ID:          row.ID,
		BoardID:     row.BoardID,
		Title:       row.Title,
		Status:      domain.TaskStatus(row.Status),
		Priority:    domain.TaskPriority(row.Priority),
		CreatedByID: row.CreatedByID,
		IsCompleted: row.IsCompleted,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}

	if row.ListID.Valid {
		value := row.ListID.String
		task.ListID = &value
	}
	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}
	if row.AssignedToID.Valid {
		value := row.AssignedToID.String
		task.AssignedToID = &value
	}
	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}
	if row.CompletedAt.Valid {
		value := row.CompletedAt.Time
		task.CompletedAt = &value
	}
	if row.CompletedBy.Valid {
		value := row.CompletedBy.String
		task.CompletedBy = &value
	}

	task.Tags = []string{}
	if len(row.Tags) > 0 {
		if err := json.Unmarshal(row.Tags, &task.Tags); err != nil {
			return domain.TaskItem{}, fmt.Errorf("unmarshal tags: %w", err)
		}
	}
	return task, nil
}
