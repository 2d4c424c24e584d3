package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"boardhub/internal/adapter/memory"
	"boardhub/internal/core/domain"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

// emailRecorder captures outbound emails and can be primed to fail.
type emailRecorder struct {
	mu       sync.Mutex
	accepted []string
	rejected []string
	err      error
}

func (r *emailRecorder) SendInvitationAccepted(_ context.Context, toEmail, _, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.accepted = append(r.accepted, toEmail)
	return nil
}

func (r *emailRecorder) SendInvitationRejected(_ context.Context, toEmail, _, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.rejected = append(r.rejected, toEmail)
	return nil
}

func (r *emailRecorder) sentAccepted() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.accepted...)
}

type testEnv struct {
	store         *memory.Store
	email         *emailRecorder
	dispatcher    *Dispatcher
	boards        *BoardService
	invitations   *InvitationService
	tasks         *TaskService
	lists         *ListService
	notifications *NotificationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memory.NewStore()
	email := &emailRecorder{}
	dispatcher := NewDispatcher(store.Notifications(), email, 16)
	dispatcher.now = func() time.Time { return testNow }
	t.Cleanup(dispatcher.Close)

	boards := NewBoardService(store.Boards())
	boards.now = func() time.Time { return testNow }

	invitations := NewInvitationService(store.Boards(), store.Invitations(), store.Users(), dispatcher)
	invitations.now = func() time.Time { return testNow }

	tasks := NewTaskService(store.Boards(), store.Tasks(), store.Lists(), store.Users(), dispatcher)
	tasks.now = func() time.Time { return testNow }

	lists := NewListService(store.Boards(), store.Lists())
	lists.now = func() time.Time { return testNow }

	notifications := NewNotificationService(store.Notifications())
	notifications.now = func() time.Time { return testNow }

	env := &testEnv{
		store:         store,
		email:         email,
		dispatcher:    dispatcher,
		boards:        boards,
		invitations:   invitations,
		tasks:         tasks,
		lists:         lists,
		notifications: notifications,
	}

	for _, user := range []domain.User{
		{ID: "u1", Email: "u1@example.com", Username: "alice", DisplayName: "Alice"},
		{ID: "u2", Email: "u2@example.com", Username: "bob", DisplayName: "Bob"},
		{ID: "u3", Email: "u3@example.com", Username: "carol", DisplayName: "Carol"},
		{ID: "u4", Email: "u4@example.com", Username: "dave", DisplayName: "Dave"},
	} {
		store.SeedUser(user)
	}
	return env
}

func (e *testEnv) seedBoard(t *testing.T, id, ownerID string, members []string, isPublic bool) domain.Board {
	t.Helper()
	board := domain.Board{
		ID:        id,
		Title:     "Board " + id,
		OwnerID:   ownerID,
		Members:   members,
		IsPublic:  isPublic,
		Columns:   []string{"To Do", "In Progress", "Done"},
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
	if err := e.store.Boards().Create(context.Background(), board); err != nil {
		t.Fatalf("seed board: %v", err)
	}
	return board
}

func (e *testEnv) seedTask(t *testing.T, id, boardID, createdBy string, mutate func(*domain.TaskItem)) domain.TaskItem {
	t.Helper()
	task := domain.TaskItem{
		ID:          id,
		BoardID:     boardID,
		Title:       "Task " + id,
		Status:      domain.TaskStatusTodo,
		Priority:    domain.TaskPriorityMedium,
		Tags:        []string{},
		CreatedByID: createdBy,
		CreatedAt:   testNow,
		UpdatedAt:   testNow,
	}
	if mutate != nil {
		mutate(&task)
	}
	if err := e.store.Tasks().Create(context.Background(), task); err != nil {
		t.Fatalf("seed task: %v", err)
	}
	return task
}

func (e *testEnv) notificationsFor(t *testing.T, userID string) []domain.Notification {
	t.Helper()
	notifications, err := e.store.Notifications().ListByRecipient(context.Background(), userID)
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	return notifications
}

func strPtr(s string) *string { return &s }
