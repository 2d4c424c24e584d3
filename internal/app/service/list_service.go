package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"boardhub/internal/core/access"
	"boardhub/internal/core/domain"
	"boardhub/internal/core/ports"
)

// ListService manages a board's checklists. Lists and tasks are
// independent collections: deleting a list never cascades to tasks.
type ListService struct {
	boards ports.BoardRepository
	lists  ports.ListRepository

	now   func() time.Time
	newID func() string
}

var _ ports.ListService = (*ListService)(nil)

func NewListService(boards ports.BoardRepository, lists ports.ListRepository) *ListService {
	return &ListService{
		boards: boards,
		lists:  lists,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

func (s *ListService) CreateList(ctx context.Context, boardID, principalID string, input domain.CreateListInput) (domain.List, error) {
	board, err := s.boards.GetByID(ctx, boardID)
	if err != nil {
		return domain.List{}, err
	}
	if !access.CanWrite(board, principalID) {
		return domain.List{}, domain.ErrUnauthorized
	}

	now := s.now().UTC()
	list := domain.List{
		ID:        s.newID(),
		BoardID:   boardID,
		Title:     input.Title,
		Order:     input.Order,
		Items:     []domain.ListItem{},
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.lists.Create(ctx, list); err != nil {
		return domain.List{}, fmt.Errorf("create list: %w", err)
	}
	return list, nil
}

func (s *ListService) ListBoardLists(ctx context.Context, boardID, principalID string) ([]domain.List, error) {
	board, err := s.boards.GetByID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if !access.CanRead(board, principalID) {
		return nil, domain.ErrUnauthorized
	}
	return s.lists.ListByBoard(ctx, boardID)
}

func (s *ListService) UpdateList(ctx context.Context, listID, principalID string, input domain.UpdateListInput) (domain.List, error) {
	list, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return domain.List{}, err
	}
	board, err := s.boards.GetByID(ctx, list.BoardID)
	if err != nil {
		return domain.List{}, err
	}
	if !access.CanWrite(board, principalID) {
		return domain.List{}, domain.ErrUnauthorized
	}

	if input.Title != nil {
		list.Title = *input.Title
	}
	if input.Order != nil {
		list.Order = *input.Order
	}
	if input.ItemsSet {
		items := input.Items
		if items == nil {
			items = []domain.ListItem{}
		}
		for i := range items {
			if items[i].ID == "" {
				items[i].ID = s.newID()
			}
		}
		list.Items = items
	}
	if input.NotesSet {
		list.Notes = input.Notes
	}
	list.UpdatedAt = s.now().UTC()

	if err := s.lists.Update(ctx, list); err != nil {
		return domain.List{}, fmt.Errorf("update list: %w", err)
	}
	return list, nil
}

func (s *ListService) DeleteList(ctx context.Context, listID, principalID string) error {
	list, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return err
	}
	board, err := s.boards.GetByID(ctx, list.BoardID)
	if err != nil {
		return err
	}
	if !access.CanWrite(board, principalID) {
		return domain.ErrUnauthorized
	}
	return s.lists.Delete(ctx, listID)
}
