package validation

import (
	"encoding/json"
	"errors"
	"strings"

	"boardhub/internal/adapter/http/dto"
	"boardhub/internal/core/domain"
)

var ErrInvalidListPayload = errors.New("invalid list payload")

func BuildUpdateListInput(req dto.UpdateListRequest, raw map[string]json.RawMessage) (domain.UpdateListInput, error) {
	if !hasListUpdateFields(raw) {
		return domain.UpdateListInput{}, ErrInvalidListPayload
	}

	var title *string
	if hasJSONField(raw, "title") && req.Title == nil {
		return domain.UpdateListInput{}, ErrInvalidListPayload
	}
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateListInput{}, ErrInvalidListPayload
		}
		title = &value
	}

	if hasJSONField(raw, "order") && req.Order == nil {
		return domain.UpdateListInput{}, ErrInvalidListPayload
	}
	if req.Order != nil && *req.Order < 0 {
		return domain.UpdateListInput{}, ErrInvalidListPayload
	}

	itemsSet := hasJSONField(raw, "items")
	var items []domain.ListItem
	if itemsSet {
		if isJSONNull(raw["items"]) {
			return domain.UpdateListInput{}, ErrInvalidListPayload
		}
		items = make([]domain.ListItem, 0, len(req.Items))
		for _, item := range req.Items {
			if strings.TrimSpace(item.Text) == "" {
				return domain.UpdateListInput{}, ErrInvalidListPayload
			}
			items = append(items, domain.ListItem{
				ID:        item.ID,
				Text:      item.Text,
				Completed: item.Completed,
				Notes:     item.Notes,
			})
		}
	}

	notesSet := hasJSONField(raw, "notes")

	return domain.UpdateListInput{
		Title:    title,
		Order:    req.Order,
		Items:    items,
		ItemsSet: itemsSet,
		Notes:    req.Notes,
		NotesSet: notesSet,
	}, nil
}

func hasListUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "order") ||
		hasJSONField(raw, "items") ||
		hasJSONField(raw, "notes")
}
