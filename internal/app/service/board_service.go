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

var defaultColumns = []string{"To Do", "In Progress", "Done"}

type BoardService struct {
	boards ports.BoardRepository

	now   func() time.Time
	newID func() string
}

var _ ports.BoardService = (*BoardService)(nil)

func NewBoardService(boards ports.BoardRepository) *BoardService {
	return &BoardService{
		boards: boards,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

func (s *BoardService) CreateBoard(ctx context.Context, principalID string, input domain.CreateBoardInput) (domain.Board, error) {
	now := s.now().UTC()
	columns := input.Columns
	if len(columns) == 0 {
		columns = append([]string(nil), defaultColumns...)
	}

	board := domain.Board{
		ID:          s.newID(),
		Title:       input.Title,
		Description: input.Description,
		OwnerID:     principalID,
		Members:     []string{},
		IsPublic:    input.IsPublic,
		Columns:     columns,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.boards.Create(ctx, board); err != nil {
		return domain.Board{}, fmt.Errorf("create board: %w", err)
	}
	return board, nil
}

func (s *BoardService) GetBoard(ctx context.Context, boardID, principalID string) (domain.Board, error) {
	board, err := s.boards.GetByID(ctx, boardID)
	if err != nil {
		return domain.Board{}, err
	}
	if !access.CanRead(board, principalID) {
		return domain.Board{}, domain.ErrUnauthorized
	}
	return board, nil
}

// ListBoards returns the boards the principal owns or belongs to.
func (s *BoardService) ListBoards(ctx context.Context, principalID string) ([]domain.Board, error) {
	return s.boards.ListForUser(ctx, principalID)
}

func (s *BoardService) UpdateBoard(ctx context.Context, boardID, principalID string, input domain.UpdateBoardInput) (domain.Board, error) {
	board, err := s.boards.GetByID(ctx, boardID)
	if err != nil {
		return domain.Board{}, err
	}
	if !access.CanWrite(board, principalID) {
		return domain.Board{}, domain.ErrUnauthorized
	}

	if input.Title != nil {
		board.Title = *input.Title
	}
	if input.Description != nil {
		board.Description = input.Description
	}
	if input.IsPublic != nil {
		board.IsPublic = *input.IsPublic
	}
	if input.IsArchived != nil {
		board.IsArchived = *input.IsArchived
	}
	if input.ColumnsSet {
		board.Columns = input.Columns
	}
	board.UpdatedAt = s.now().UTC()

	if err := s.boards.Update(ctx, board); err != nil {
		return domain.Board{}, fmt.Errorf("update board: %w", err)
	}
	return board, nil
}

func (s *BoardService) DeleteBoard(ctx context.Context, boardID, principalID string) error {
	board, err := s.boards.GetByID(ctx, boardID)
	if err != nil {
		return err
	}
	if !access.Evaluate(board, principalID, access.Request{Action: access.ActionDeleteBoard}) {
		return domain.ErrUnauthorized
	}
	return s.boards.Delete(ctx, boardID)
}

// RemoveMember drops a member from the board. The owner may remove
// anyone, a member may remove themselves, and the owner can never be
// removed.
func (s *BoardService) RemoveMember(ctx context.Context, boardID, memberID, principalID string) error {
	board, err := s.boards.GetByID(ctx, boardID)
	if err != nil {
		return err
	}
	if memberID == board.OwnerID {
		return domain.ErrOwnerCannotBeRemoved
	}
	if !access.Evaluate(board, principalID, access.Request{
		Action:       access.ActionRemoveMember,
		TargetUserID: memberID,
	}) {
		return domain.ErrUnauthorized
	}
	if !board.IsMember(memberID) {
		return domain.ErrUserNotFound
	}

	board.RemoveMember(memberID)
	board.UpdatedAt = s.now().UTC()
	if err := s.boards.Update(ctx, board); err != nil {
		return fmt.Errorf("remove board member: %w", err)
	}
	return nil
}
