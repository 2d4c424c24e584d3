package dto

type List struct {
	ID        string     `json:"id"`
	BoardID   string     `json:"board_id"`
	Title     string     `json:"title"`
	Order     int        `json:"order"`
	Items     []ListItem `json:"items"`
	Notes     *string    `json:"notes,omitempty"`
	CreatedAt string     `json:"created_at"`
	UpdatedAt string     `json:"updated_at"`
}

type ListItem struct {
	ID        string  `json:"id"`
	Text      string  `json:"text"`
	Completed bool    `json:"completed"`
	Notes     *string `json:"notes,omitempty"`
}

type CreateListRequest struct {
	Title string  `json:"title" binding:"required,max=255"`
	Order *int    `json:"order" binding:"omitempty,min=0"`
	Notes *string `json:"notes" binding:"omitempty,max=65535"`
}

type UpdateListRequest struct {
	Title *string          `json:"title"`
	Order *int             `json:"order"`
	Items []ListItemUpsert `json:"items"`
	Notes *string          `json:"notes"`
}

type ListItemUpsert struct {
	ID        string  `json:"id"`
	Text      string  `json:"text"`
	Completed bool    `json:"completed"`
	Notes     *string `json:"notes"`
}
