package mapper

import (
	"time"

	"boardhub/internal/adapter/http/dto"
	"boardhub/internal/core/domain"
)

func ToBoards(boards []domain.Board) []dto.Board {
	items := make([]dto.Board, 0, len(boards))
	for _, board := range boards {
		items = append(items, ToBoard(board))
	}
	return items
}

func ToBoard(board domain.Board) dto.Board {
	item := dto.Board{
		ID:         board.ID,
		Title:      board.Title,
		OwnerID:    board.OwnerID,
		Members:    board.Members,
		IsPublic:   board.IsPublic,
		IsArchived: board.IsArchived,
		Columns:    board.Columns,
		CreatedAt:  board.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  board.UpdatedAt.Format(time.RFC3339),
	}

	if item.Members == nil {
		item.Members = []string{}
	}

	if board.Description != nil {
		value := *board.Description
		item.Description = &value
	}

	return item
}
