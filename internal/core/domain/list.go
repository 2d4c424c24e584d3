package domain

import "time"

// List is a user-created checklist attached to a board. It is
// unrelated to the board's Kanban columns and to tasks; deleting a
// list never touches tasks.
type List struct {
	ID        string
	BoardID   string
	Title     string
	Order     int
	Items     []ListItem
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ListItem struct {
	ID        string  `json:"id"`
	Text      string  `json:"text"`
	Completed bool    `json:"completed"`
	Notes     *string `json:"notes,omitempty"`
}

type CreateListInput struct {
	Title string
	Order int
	Notes *string
}

type UpdateListInput struct {
	Title    *string
	Order    *int
	Items    []ListItem
	ItemsSet bool
	Notes    *string
	NotesSet bool
}
