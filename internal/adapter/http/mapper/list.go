package mapper

import (
	"time"

	"boardhub/internal/adapter/http/dto"
	"boardhub/internal/core/domain"
)

func ToLists(lists []domain.List) []dto.List {
	items := make([]dto.List, 0, len(lists))
	for _, list := range lists {
		items = append(items, ToList(list))
	}
	return items
}

func ToList(list domain.List) dto.List {
	item := dto.List{
		ID:        list.ID,
		BoardID:   list.BoardID,
		Title:     list.Title,
		Order:     list.Order,
		Items:     make([]dto.ListItem, 0, len(list.Items)),
		CreatedAt: list.CreatedAt.Format(time.RFC3339),
		UpdatedAt: list.UpdatedAt.Format(time.RFC3339),
	}

	for _, entry := range list.Items {
		item.Items = append(item.Items, dto.ListItem{
			ID:        entry.ID,
			Text:      entry.Text,
			Completed: entry.Completed,
			Notes:     entry.Notes,
		})
	}

	if list.Notes != nil {
		value := *list.Notes
		item.Notes = &value
	}

	return item
}
