package validation

import (
	"encoding/json"
	"errors"
	"strings"

	"boardhub/internal/adapter/http/dto"
	"boardhub/internal/core/domain"
)

var ErrInvalidBoardPayload = errors.New("invalid board payload")

func BuildUpdateBoardInput(req dto.UpdateBoardRequest, raw map[string]json.RawMessage) (domain.UpdateBoardInput, error) {
	if !hasBoardUpdateFields(raw) {
		return domain.UpdateBoardInput{}, ErrInvalidBoardPayload
	}

	var title *string
	if hasJSONField(raw, "title") && req.Title == nil {
		return domain.UpdateBoardInput{}, ErrInvalidBoardPayload
	}
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateBoardInput{}, ErrInvalidBoardPayload
		}
		title = &value
	}

	if hasJSONField(raw, "is_public") && req.IsPublic == nil {
		return domain.UpdateBoardInput{}, ErrInvalidBoardPayload
	}
	if hasJSONField(raw, "is_archived") && req.IsArchived == nil {
		return domain.UpdateBoardInput{}, ErrInvalidBoardPayload
	}

	columnsSet := hasJSONField(raw, "columns")
	if columnsSet {
		if isJSONNull(raw["columns"]) || len(req.Columns) == 0 {
			return domain.UpdateBoardInput{}, ErrInvalidBoardPayload
		}
		for _, col := range req.Columns {
			if strings.TrimSpace(col) == "" {
				return domain.UpdateBoardInput{}, ErrInvalidBoardPayload
			}
		}
	}

	return domain.UpdateBoardInput{
		Title:       title,
		Description: req.Description,
		IsPublic:    req.IsPublic,
		IsArchived:  req.IsArchived,
		Columns:     req.Columns,
		ColumnsSet:  columnsSet,
	}, nil
}

func hasBoardUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "is_public") ||
		hasJSONField(raw, "is_archived") ||
		hasJSONField(raw, "columns")
}
