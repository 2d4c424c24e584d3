// Package memory provides an in-memory implementation of the
// repository ports, used as a test double for the service layer.
package memory

import (
	"context"
	"sort"
	"sync"

	"boardhub/internal/core/domain"
	"boardhub/internal/core/ports"
)

// Store holds every collection behind one mutex. Reads return copies
// so callers can never alias stored state.
type Store struct {
	mu            sync.RWMutex
	users         map[string]domain.User
	boards        map[string]domain.Board
	invitations   map[string]domain.BoardInvitation
	tasks         map[string]domain.TaskItem
	lists         map[string]domain.List
	notifications map[string]domain.Notification
	inserted      map[string]int
	seq           int
}

func NewStore() *Store {
	return &Store{
		users:         make(map[string]domain.User),
		boards:        make(map[string]domain.Board),
		invitations:   make(map[string]domain.BoardInvitation),
		tasks:         make(map[string]domain.TaskItem),
		lists:         make(map[string]domain.List),
		notifications: make(map[string]domain.Notification),
		inserted:      make(map[string]int),
	}
}

func (s *Store) Users() ports.UserRepository                 { return &userRepo{s} }
func (s *Store) Boards() ports.BoardRepository               { return &boardRepo{s} }
func (s *Store) Invitations() ports.InvitationRepository     { return &invitationRepo{s} }
func (s *Store) Tasks() ports.TaskRepository                 { return &taskRepo{s} }
func (s *Store) Lists() ports.ListRepository                 { return &listRepo{s} }
func (s *Store) Notifications() ports.NotificationRepository { return &notificationRepo{s} }

// SeedUser inserts a user directly; the user port is lookup-only.
func (s *Store) SeedUser(user domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
}

func (s *Store) track(id string) {
	s.seq++
	s.inserted[id] = s.seq
}

func (s *Store) sortByInsertion(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		return s.inserted[ids[i]] < s.inserted[ids[j]]
	})
}

type userRepo struct{ s *Store }

func (r *userRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	user, ok := r.s.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, user := range r.s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (r *userRepo) GetByUsername(_ context.Context, username string) (domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, user := range r.s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

type boardRepo struct{ s *Store }

func cloneBoard(b domain.Board) domain.Board {
	b.Members = append([]string(nil), b.Members...)
	b.Columns = append([]string(nil), b.Columns...)
	return b
}

func (r *boardRepo) GetByID(_ context.Context, id string) (domain.Board, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	board, ok := r.s.boards[id]
	if !ok {
		return domain.Board{}, domain.ErrBoardNotFound
	}
	return cloneBoard(board), nil
}

func (r *boardRepo) ListForUser(_ context.Context, userID string) ([]domain.Board, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ids := make([]string, 0)
	for id, board := range r.s.boards {
		if board.IsMember(userID) {
			ids = append(ids, id)
		}
	}
	r.s.sortByInsertion(ids)
	boards := make([]domain.Board, 0, len(ids))
	for _, id := range ids {
		boards = append(boards, cloneBoard(r.s.boards[id]))
	}
	return boards, nil
}

func (r *boardRepo) Create(_ context.Context, board domain.Board) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.boards[board.ID] = cloneBoard(board)
	r.s.track(board.ID)
	return nil
}

func (r *boardRepo) Update(_ context.Context, board domain.Board) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.boards[board.ID]; !ok {
		return domain.ErrBoardNotFound
	}
	r.s.boards[board.ID] = cloneBoard(board)
	return nil
}

func (r *boardRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.boards[id]; !ok {
		return domain.ErrBoardNotFound
	}
	delete(r.s.boards, id)
	return nil
}

type invitationRepo struct{ s *Store }

func (r *invitationRepo) GetByID(_ context.Context, id string) (domain.BoardInvitation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	invitation, ok := r.s.invitations[id]
	if !ok {
		return domain.BoardInvitation{}, domain.ErrInvitationNotFound
	}
	return invitation, nil
}

func (r *invitationRepo) FindPending(_ context.Context, boardID, inviteeID string) (domain.BoardInvitation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, invitation := range r.s.invitations {
		if invitation.BoardID == boardID &&
			invitation.InviteeID == inviteeID &&
			invitation.Status == domain.InvitationStatusPending {
			return invitation, nil
		}
	}
	return domain.BoardInvitation{}, domain.ErrInvitationNotFound
}

func (r *invitationRepo) ListByBoard(_ context.Context, boardID string) ([]domain.BoardInvitation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ids := make([]string, 0)
	for id, invitation := range r.s.invitations {
		if invitation.BoardID == boardID {
			ids = append(ids, id)
		}
	}
	r.s.sortByInsertion(ids)
	invitations := make([]domain.BoardInvitation, 0, len(ids))
	for _, id := range ids {
		invitations = append(invitations, r.s.invitations[id])
	}
	return invitations, nil
}

func (r *invitationRepo) ListPendingByInvitee(_ context.Context, inviteeID string) ([]domain.BoardInvitation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ids := make([]string, 0)
	for id, invitation := range r.s.invitations {
		if invitation.InviteeID == inviteeID && invitation.Status == domain.InvitationStatusPending {
			ids = append(ids, id)
		}
	}
	r.s.sortByInsertion(ids)
	invitations := make([]domain.BoardInvitation, 0, len(ids))
	for _, id := range ids {
		invitations = append(invitations, r.s.invitations[id])
	}
	return invitations, nil
}

func (r *invitationRepo) Create(_ context.Context, invitation domain.BoardInvitation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.invitations[invitation.ID] = invitation
	r.s.track(invitation.ID)
	return nil
}

func (r *invitationRepo) Update(_ context.Context, invitation domain.BoardInvitation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.invitations[invitation.ID]; !ok {
		return domain.ErrInvitationNotFound
	}
	r.s.invitations[invitation.ID] = invitation
	return nil
}

type taskRepo struct{ s *Store }

func cloneTask(t domain.TaskItem) domain.TaskItem {
	t.Tags = append([]string(nil), t.Tags...)
	return t
}

func (r *taskRepo) GetByID(_ context.Context, id string) (domain.TaskItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	task, ok := r.s.tasks[id]
	if !ok {
		return domain.TaskItem{}, domain.ErrTaskNotFound
	}
	return cloneTask(task), nil
}

func (r *taskRepo) ListByBoard(_ context.Context, boardID string) ([]domain.TaskItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ids := make([]string, 0)
	for id, task := range r.s.tasks {
		if task.BoardID == boardID {
			ids = append(ids, id)
		}
	}
	r.s.sortByInsertion(ids)
	tasks := make([]domain.TaskItem, 0, len(ids))
	for _, id := range ids {
		tasks = append(tasks, cloneTask(r.s.tasks[id]))
	}
	return tasks, nil
}

func (r *taskRepo) Create(_ context.Context, task domain.TaskItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.tasks[task.ID] = cloneTask(task)
	r.s.track(task.ID)
	return nil
}

func (r *taskRepo) Update(_ context.Context, task domain.TaskItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.tasks[task.ID]; !ok {
		return domain.ErrTaskNotFound
	}
	r.s.tasks[task.ID] = cloneTask(task)
	return nil
}

func (r *taskRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.s.tasks, id)
	return nil
}

type listRepo struct{ s *Store }

func cloneList(l domain.List) domain.List {
	l.Items = append([]domain.ListItem(nil), l.Items...)
	return l
}

func (r *listRepo) GetByID(_ context.Context, id string) (domain.List, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list, ok := r.s.lists[id]
	if !ok {
		return domain.List{}, domain.ErrListNotFound
	}
	return cloneList(list), nil
}

func (r *listRepo) ListByBoard(_ context.Context, boardID string) ([]domain.List, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ids := make([]string, 0)
	for id, list := range r.s.lists {
		if list.BoardID == boardID {
			ids = append(ids, id)
		}
	}
	r.s.sortByInsertion(ids)
	lists := make([]domain.List, 0, len(ids))
	for _, id := range ids {
		lists = append(lists, cloneList(r.s.lists[id]))
	}
	return lists, nil
}

func (r *listRepo) Create(_ context.Context, list domain.List) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.lists[list.ID] = cloneList(list)
	r.s.track(list.ID)
	return nil
}

func (r *listRepo) Update(_ context.Context, list domain.List) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.lists[list.ID]; !ok {
		return domain.ErrListNotFound
	}
	r.s.lists[list.ID] = cloneList(list)
	return nil
}

func (r *listRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.lists[id]; !ok {
		return domain.ErrListNotFound
	}
	delete(r.s.lists, id)
	return nil
}

type notificationRepo struct{ s *Store }

func (r *notificationRepo) GetByID(_ context.Context, id string) (domain.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	notification, ok := r.s.notifications[id]
	if !ok {
		return domain.Notification{}, domain.ErrNotificationNotFound
	}
	return notification, nil
}

func (r *notificationRepo) ListByRecipient(_ context.Context, recipientID string) ([]domain.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ids := make([]string, 0)
	for id, notification := range r.s.notifications {
		if notification.RecipientID == recipientID {
			ids = append(ids, id)
		}
	}
	r.s.sortByInsertion(ids)
	notifications := make([]domain.Notification, 0, len(ids))
	for _, id := range ids {
		notifications = append(notifications, r.s.notifications[id])
	}
	// Newest first, like the mysql adapter.
	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications, nil
}

func (r *notificationRepo) Create(_ context.Context, notification domain.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.notifications[notification.ID] = notification
	r.s.track(notification.ID)
	return nil
}

func (r *notificationRepo) Update(_ context.Context, notification domain.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.notifications[notification.ID]; !ok {
		return domain.ErrNotificationNotFound
	}
	r.s.notifications[notification.ID] = notification
	return nil
}
