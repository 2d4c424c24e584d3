package domain

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

type TaskItem struct {
	ID           string
	BoardID      string
	ListID       *string
	Title        string
	Description  *string
	Status       TaskStatus
	Priority     TaskPriority
	Tags         []string
	AssignedToID *string
	CreatedByID  string
	DueDate      *time.Time
	IsCompleted  bool
	CompletedAt  *time.Time
	CompletedBy  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateTaskInput struct {
	Title       string
	Description *string
	Status      TaskStatus
	Priority    TaskPriority
	Tags        []string
	ListID      *string
	DueDate     *time.Time
}

// UpdateTaskInput carries merge-patch fields. Pointer fields are only
// applied when non-nil; the Set flags distinguish "clear this field"
// from "leave it alone" for nullable columns.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Status         *TaskStatus
	Priority       *TaskPriority
	Tags           []string
	TagsSet        bool
	DueDate        *time.Time
	DueDateSet     bool
	AssignedToID   *string
	AssignedToSet  bool
	IsCompleted    *bool
}
