package dto

type Task struct {
	ID           string   `json:"id"`
	BoardID      string   `json:"board_id"`
	ListID       *string  `json:"list_id,omitempty"`
	Title        string   `json:"title"`
	Description  *string  `json:"description,omitempty"`
	Status       string   `json:"status"`
	Priority     string   `json:"priority"`
	Tags         []string `json:"tags"`
	AssignedToID *string  `json:"assigned_to_id,omitempty"`
	CreatedByID  string   `json:"created_by_id"`
	DueDate      *string  `json:"due_date,omitempty"`
	IsCompleted  bool     `json:"is_completed"`
	CompletedAt  *string  `json:"completed_at,omitempty"`
	CompletedBy  *string  `json:"completed_by,omitempty"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

type CreateTaskRequest struct {
	Title       string   `json:"title" binding:"required,max=255"`
	Description *string  `json:"description" binding:"omitempty,max=65535"`
	Status      *string  `json:"status" binding:"omitempty,oneof=todo in_progress done"`
	Priority    *string  `json:"priority" binding:"omitempty,oneof=low medium high"`
	Tags        []string `json:"tags" binding:"omitempty,max=20,dive,required,max=50"`
	ListID      *string  `json:"list_id"`
	DueDate     *string  `json:"due_date"`
}

// UpdateTaskRequest carries merge-patch semantics: a field is applied
// only when the key is present in the request body, so the handler pairs
// this struct with the raw payload to tell "absent" apart from "null".
type UpdateTaskRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Status       *string  `json:"status"`
	Priority     *string  `json:"priority"`
	Tags         []string `json:"tags"`
	DueDate      *string  `json:"due_date"`
	AssignedToID *string  `json:"assigned_to_id"`
	IsCompleted  *bool    `json:"is_completed"`
}

type AssignTaskRequest struct {
	AssigneeID *string `json:"assignee_id"`
}

type ChangeTaskListRequest struct {
	ListID *string `json:"list_id"`
}
