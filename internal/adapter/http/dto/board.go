package dto

type Board struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	OwnerID     string   `json:"owner_id"`
	Members     []string `json:"members"`
	IsPublic    bool     `json:"is_public"`
	IsArchived  bool     `json:"is_archived"`
	Columns     []string `json:"columns"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

type CreateBoardRequest struct {
	Title       string   `json:"title" binding:"required,max=255"`
	Description *string  `json:"description" binding:"omitempty,max=65535"`
	IsPublic    *bool    `json:"is_public"`
	Columns     []string `json:"columns" binding:"omitempty,max=20,dive,required,max=100"`
}

type UpdateBoardRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	IsPublic    *bool    `json:"is_public"`
	IsArchived  *bool    `json:"is_archived"`
	Columns     []string `json:"columns"`
}
