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

// TaskService is the set of guarded task command handlers. Every
// mutation resolves the task's board and consults the access evaluator
// before touching the store.
type TaskService struct {
	boards     ports.BoardRepository
	tasks      ports.TaskRepository
	lists      ports.ListRepository
	users      ports.UserRepository
	dispatcher ports.NotificationDispatcher

	now   func() time.Time
	newID func() string
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(
	boards ports.BoardRepository,
	tasks ports.TaskRepository,
	lists ports.ListRepository,
	users ports.UserRepository,
	dispatcher ports.NotificationDispatcher,
) *TaskService {
	return &TaskService{
		boards:     boards,
		tasks:      tasks,
		lists:      lists,
		users:      users,
		dispatcher: dispatcher,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, boardID, principalID string, input domain.CreateTaskInput) (domain.TaskItem, error) {
	board, err := s.boards.GetByID(ctx, boardID)
	if err != nil {
		return domain.TaskItem{}, err
	}
	if !access.CanWrite(board, principalID) {
		return domain.TaskItem{}, domain.ErrUnauthorized
	}
	if input.ListID != nil {
		if err := s.checkList(ctx, *input.ListID, boardID); err != nil {
			return domain.TaskItem{}, err
		}
	}

	status := input.Status
	if status == "" {
		status = domain.TaskStatusTodo
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.TaskPriorityMedium
	}
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	now := s.now().UTC()
	task := domain.TaskItem{
		ID:          s.newID(),
		BoardID:     boardID,
		ListID:      input.ListID,
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		Priority:    priority,
		Tags:        tags,
		CreatedByID: principalID,
		DueDate:     input.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return domain.TaskItem{}, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

func (s *TaskService) ListBoardTasks(ctx context.Context, boardID, principalID string) ([]domain.TaskItem, error) {
	board, err := s.boards.GetByID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if !access.CanRead(board, principalID) {
		return nil, domain.ErrUnauthorized
	}
	return s.tasks.ListByBoard(ctx, boardID)
}

// UpdateTask applies a merge-patch: absent fields stay untouched. When
// the patch changes the assignee to a non-empty value, a TaskAssigned
// notification goes to the new assignee after the write.
func (s *TaskService) UpdateTask(ctx context.Context, taskID, principalID string, input domain.UpdateTaskInput) (domain.TaskItem, error) {
	task, board, err := s.loadTaskAndBoard(ctx, taskID)
	if err != nil {
		return domain.TaskItem{}, err
	}
	if !access.CanWrite(board, principalID) {
		return domain.TaskItem{}, domain.ErrUnauthorized
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.DescriptionSet {
		task.Description = input.Description
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.TagsSet {
		tags := input.Tags
		if tags == nil {
			tags = []string{}
		}
		task.Tags = tags
	}
	if input.DueDateSet {
		task.DueDate = input.DueDate
	}

	now := s.now().UTC()
	if input.IsCompleted != nil && *input.IsCompleted != task.IsCompleted {
		task.IsCompleted = *input.IsCompleted
		if task.IsCompleted {
			task.CompletedAt = &now
			completedBy := principalID
			task.CompletedBy = &completedBy
		} else {
			task.CompletedAt = nil
			task.CompletedBy = nil
		}
	}

	assigneeChanged := false
	if input.AssignedToSet {
		if input.AssignedToID != nil && !board.IsMember(*input.AssignedToID) {
			return domain.TaskItem{}, domain.ErrAssigneeNotMember
		}
		assigneeChanged = !equalPtr(task.AssignedToID, input.AssignedToID)
		task.AssignedToID = input.AssignedToID
	}

	task.UpdatedAt = now
	if err := s.tasks.Update(ctx, task); err != nil {
		return domain.TaskItem{}, fmt.Errorf("update task: %w", err)
	}

	if assigneeChanged && task.AssignedToID != nil {
		if err := s.notifyAssignment(ctx, task, principalID); err != nil {
			return domain.TaskItem{}, err
		}
	}
	return task, nil
}

// AssignTask sets or clears the assignee. A non-nil assignee must be
// the board owner or a member.
func (s *TaskService) AssignTask(ctx context.Context, taskID, principalID string, assigneeID *string) (domain.TaskItem, error) {
	task, board, err := s.loadTaskAndBoard(ctx, taskID)
	if err != nil {
		return domain.TaskItem{}, err
	}
	if !access.CanWrite(board, principalID) {
		return domain.TaskItem{}, domain.ErrUnauthorized
	}
	if assigneeID != nil && !board.IsMember(*assigneeID) {
		return domain.TaskItem{}, domain.ErrAssigneeNotMember
	}

	// Reassigning the same value is a no-op and must not notify.
	changed := !equalPtr(task.AssignedToID, assigneeID)
	task.AssignedToID = assigneeID
	task.UpdatedAt = s.now().UTC()
	if err := s.tasks.Update(ctx, task); err != nil {
		return domain.TaskItem{}, fmt.Errorf("assign task: %w", err)
	}

	if changed && assigneeID != nil {
		if err := s.notifyAssignment(ctx, task, principalID); err != nil {
			return domain.TaskItem{}, err
		}
	}
	return task, nil
}

func (s *TaskService) ChangeTaskList(ctx context.Context, taskID, principalID string, listID *string) (domain.TaskItem, error) {
	task, board, err := s.loadTaskAndBoard(ctx, taskID)
	if err != nil {
		return domain.TaskItem{}, err
	}
	if !access.CanWrite(board, principalID) {
		return domain.TaskItem{}, domain.ErrUnauthorized
	}
	if listID != nil {
		if err := s.checkList(ctx, *listID, task.BoardID); err != nil {
			return domain.TaskItem{}, err
		}
	}

	task.ListID = listID
	task.UpdatedAt = s.now().UTC()
	if err := s.tasks.Update(ctx, task); err != nil {
		return domain.TaskItem{}, fmt.Errorf("move task: %w", err)
	}
	return task, nil
}

// DeleteTask removes a task. Only the creator or the board owner may
// delete, and completed tasks are immutable for audit reasons no
// matter who asks.
func (s *TaskService) DeleteTask(ctx context.Context, taskID, principalID string) error {
	task, board, err := s.loadTaskAndBoard(ctx, taskID)
	if err != nil {
		return err
	}
	if task.IsCompleted {
		return domain.ErrTaskCompleted
	}
	if principalID != task.CreatedByID && principalID != board.OwnerID {
		return domain.ErrUnauthorized
	}
	return s.tasks.Delete(ctx, taskID)
}

func (s *TaskService) loadTaskAndBoard(ctx context.Context, taskID string) (domain.TaskItem, domain.Board, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return domain.TaskItem{}, domain.Board{}, err
	}
	board, err := s.boards.GetByID(ctx, task.BoardID)
	if err != nil {
		return domain.TaskItem{}, domain.Board{}, err
	}
	return task, board, nil
}

func (s *TaskService) checkList(ctx context.Context, listID, boardID string) error {
	list, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return err
	}
	if list.BoardID != boardID {
		return domain.ErrListNotFound
	}
	return nil
}

func (s *TaskService) notifyAssignment(ctx context.Context, task domain.TaskItem, actorID string) error {
	assignee, err := s.users.GetByID(ctx, *task.AssignedToID)
	if err != nil {
		return err
	}
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	return s.dispatcher.Dispatch(ctx, domain.TaskAssignedEvent{
		Task:     task,
		Assignee: assignee,
		Actor:    actor,
	})
}

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
