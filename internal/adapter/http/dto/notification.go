package dto

type Notification struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Title     string      `json:"title"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	IsRead    bool        `json:"is_read"`
	CreatedAt string      `json:"created_at"`
	ReadAt    *string     `json:"read_at,omitempty"`
}
