package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"boardhub/internal/core/domain"
)

func TestCreateTask_AppliesDefaults(t *testing.T) {
	env := newTestEnv(t)
	env.seedBoard(t, "b1", "u1", nil, false)

	task, err := env.tasks.CreateTask(context.Background(), "b1", "u1", domain.CreateTaskInput{
		Title: "Write the doc",
	})
	require.NoError(t, err)

	require.Equal(t, domain.TaskStatusTodo, task.Status)
	require.Equal(t, domain.TaskPriorityMedium, task.Priority)
	require.NotNil(t, task.Tags)
	require.Empty(t, task.Tags)
	require.Equal(t, "u1", task.CreatedByID)
	require.False(t, task.IsCompleted)
	require.Nil(t, task.AssignedToID)
}

func TestCreateTask_Guards(t *testing.T) {
	env := newTestEnv(t)
	env.seedBoard(t, "b1", "u1", nil, false)
	env.seedBoard(t, "b2", "u3", nil, false)
	list, err := env.lists.CreateList(context.Background(), "b2", "u3", domain.CreateListInput{Title: "Groceries"})
	require.NoError(t, err)

	_, err = env.tasks.CreateTask(context.Background(), "missing", "u1", domain.CreateTaskInput{Title: "x"})
	require.ErrorIs(t, err, domain.ErrBoardNotFound)

	_, err = env.tasks.CreateTask(context.Background(), "b1", "u3", domain.CreateTaskInput{Title: "x"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	// A list belonging to another board is invisible here.
	_, err = env.tasks.CreateTask(context.Background(), "b1", "u1", domain.CreateTaskInput{Title: "x", ListID: &list.ID})
	require.ErrorIs(t, err, domain.ErrListNotFound)
}

func TestCreateTask_PublicBoardAllowsOutsiders(t *testing.T) {
	env := newTestEnv(t)
	env.seedBoard(t, "b1", "u1", nil, true)

	task, err := env.tasks.CreateTask(context.Background(), "b1", "u3", domain.CreateTaskInput{Title: "drive-by"})
	require.NoError(t, err)
	require.Equal(t, "u3", task.CreatedByID)
}

func TestUpdateTask_MergePatchLeavesAbsentFieldsAlone(t *testing.T) {
	env := newTestEnv(t)
	env.seedBoard(t, "b1", "u1", []string{"u2"}, false)
	env.seedTask(t, "t1", "b1", "u1", func(task *domain.TaskItem) {
		task.Description = strPtr("original")
		task.Tags = []string{"infra"}
		task.Priority = domain.TaskPriorityHigh
	})

	updated, err := env.tasks.UpdateTask(context.Background(), "t1", "u2", domain.UpdateTaskInput{
		Title: strPtr("Renamed"),
	})
	require.NoError(t, err)

	require.Equal(t, "Renamed", updated.Title)
	require.Equal(t, "original", *updated.Description)
	require.Equal(t, []string{"infra"}, updated.Tags)
	require.Equal(t, domain.TaskPriorityHigh, updated.Priority)
}

func TestUpdateTask_NonMemberUnauthorized(t *testing.T) {
	env := newTestEnv(t)
	env.seedBoard(t, "b1", "u1", nil, false)
	env.seedTask(t, "t1", "b1", "u1", nil)

	_, err := env.tasks.UpdateTask(context.Background(), "t1", "u3", domain.UpdateTaskInput{
		Title: strPtr("hijack"),
	})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestUpdateTask_CompletionStampsAuditFields(t *testing.T) {
	env := newTestEnv(t)
	env.seedBoard(t, "b1", "u1", []string{"u2"}, false)
	env.seedTask(t, "t1", "b1", "u1", nil)

	done := true
	updated, err := env.tasks.UpdateTask(context.Background(), "t1", "u2", domain.UpdateTaskInput{
		IsCompleted: &done,
	})
	require.NoError(t, err)
	require.True(t, updated.IsCompleted)
	require.NotNil(t, updated.CompletedAt)
	require.Equal(t, "u2", *updated.CompletedBy)

	notDone := false
	updated, err = env.tasks.UpdateTask(context.Background(), "t1", "u2", domain.UpdateTaskInput{
		IsCompleted: &notDone,
	})
	require.NoError(t, err)
	require.False(t, updated.IsCompleted)
	require.Nil(t, updated.CompletedAt)
	require.Nil(t, updated.CompletedBy)
}

func TestUpdateTask_AssignmentChangeNotifiesNewAssignee(t *testing.T) {
	env := newTestEnv(t)
	env.seedBoard(t, "b1", "u1", []string{"u2"}, false)
	env.seedTask(t, "t1", "b1", "u1", nil)

	_, err := env.tasks.UpdateTask(context.Background(), "t1", "u1", domain.UpdateTaskInput{
		AssignedToID:  strPtr("u2"),
		AssignedToSet: true,
	})
	require.NoError(t, err)

	got := env.notificationsFor(t, "u2")
	require.Len(t, got, 1)
	require.Equal(t, domain.NotificationTaskAssigned, got[0].Type)
	data, ok := got[0].Data.(domain.TaskAssignedData)
	require.True(t, ok)
	require.Equal(t, "t1", data.TaskID)
	require.Equal(t, "u1", data.AssignedByID)
	require.Equal(t, "Alice", data.AssignedByName)

	// Identical value again: the changed-from-previous guard suppresses
	// the duplicate.
	_, err = env.tasks.UpdateTask(context.Background(), "t1", "u1", domain.UpdateTaskInput{
		AssignedToID:  strPtr("u2"),
		AssignedToSet: true,
	})
	require.NoError(t, err)
	require.Len(t, env.notificationsFor(t, "u2"), 1)
}

func TestAssignTask_NotifiesOnlyOnChange(t *testing.T) {
	env := newTestEnv(t)
	env.seedBoard(t, "b1", "u1", []string{"u2", "u3"}, false)
	env.seedTask(t, "t1", "b1", "u1", nil)

	_, err := env.tasks.AssignTask(context.Background(), "t1", "u1", strPtr("u2"))
	require.NoError(t, err)
	require.Len(t, env.notificationsFor(t, "u2"), 1)

	_, err = env.tasks.AssignTask(context.Background(), "t1", "u1", strPtr("u2"))
	require.NoError(t, err)
	require.Len(t, env.notificationsFor(t, "u2"), 1)

	_, err = env.tasks.AssignTask(context.Background(), "t1", "u1", strPtr("u3"))
	require.NoError(t, err)
	require.Len(t, env.notificationsFor(t, "u3"), 1)
}

func TestAssignTask_AssigneeMustBelongToBoard(t *testing.T) {
	env := newTestEnv(t)
	env.seedBoard(t, "b1", "u1", []string{"u2"}, false)
	env.seedTask(t, "t1", "b1", "u1", nil)

	_, err := env.tasks.AssignTask(context.Background(), "t1", "u1", strPtr("u3"))
	require.ErrorIs(t, err, domain.ErrAssigneeNotMember)

	// Owner counts as assignable even though not listed in Members.
	_, err = env.tasks.AssignTask(context.Background(), "t1", "u2", strPtr("u1"))
	require.NoError(t, err)
}

func TestAssignTask_ClearingAssigneeDoesNotNotify(t *testing.T) {
	env := newTestEnv(t)
	env.seedBoard(t, "b1", "u1", []string{"u2"}, false)
	env.seedTask(t, "t1", "b1", "u1", func(task *domain.TaskItem) {
		task.AssignedToID = strPtr("u2")
	})

	updated, err := env.tasks.AssignTask(context.Background(), "t1", "u1", nil)
	require.NoError(t, err)
	require.Nil(t, updated.AssignedToID)
	require.Empty(t, env.notificationsFor(t, "u2"))
}

func TestChangeTaskList_RelocatesTask(t *testing.T) {
	env := newTestEnv(t)
	env.seedBoard(t, "b1", "u1", nil, false)
	env.seedBoard(t, "b2", "u1", nil, false)
	env.seedTask(t, "t1", "b1", "u1", nil)
	list, err := env.lists.CreateList(context.Background(), "b1", "u1", domain.CreateListInput{Title: "Sprint 12"})
	require.NoError(t, err)
	foreign, err := env.lists.CreateList(context.Background(), "b2", "u1", domain.CreateListInput{Title: "Elsewhere"})
	require.NoError(t, err)

	updated, err := env.tasks.ChangeTaskList(context.Background(), "t1", "u1", &list.ID)
	require.NoError(t, err)
	require.Equal(t, list.ID, *updated.ListID)

	_, err = env.tasks.ChangeTaskList(context.Background(), "t1", "u1", &foreign.ID)
	require.ErrorIs(t, err, domain.ErrListNotFound)

	updated, err = env.tasks.ChangeTaskList(context.Background(), "t1", "u1", nil)
	require.NoError(t, err)
	require.Nil(t, updated.ListID)
}

func TestDeleteTask_CreatorOrOwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	env.seedBoard(t, "b1", "u1", []string{"u2", "u3"}, false)
	env.seedTask(t, "t1", "b1", "u2", nil)
	env.seedTask(t, "t2", "b1", "u2", nil)

	require.ErrorIs(t, env.tasks.DeleteTask(context.Background(), "t1", "u3"), domain.ErrUnauthorized)
	require.NoError(t, env.tasks.DeleteTask(context.Background(), "t1", "u2"))
	require.NoError(t, env.tasks.DeleteTask(context.Background(), "t2", "u1"))
}

func TestDeleteTask_CompletedTasksAreImmutable(t *testing.T) {
	env := newTestEnv(t)
	env.seedBoard(t, "b1", "u1", nil, false)
	env.seedTask(t, "t1", "b1", "u1", func(task *domain.TaskItem) {
		task.IsCompleted = true
		task.CompletedAt = &testNow
		task.CompletedBy = strPtr("u1")
	})

	// Conflict regardless of who asks, owner included.
	require.ErrorIs(t, env.tasks.DeleteTask(context.Background(), "t1", "u1"), domain.ErrTaskCompleted)
	require.ErrorIs(t, env.tasks.DeleteTask(context.Background(), "t1", "u3"), domain.ErrTaskCompleted)

	stored, err := env.store.Tasks().GetByID(context.Background(), "t1")
	require.NoError(t, err)
	require.True(t, stored.IsCompleted)
}

func TestListBoardTasks_RequiresRead(t *testing.T) {
	env := newTestEnv(t)
	env.seedBoard(t, "b1", "u1", nil, false)
	env.seedTask(t, "t1", "b1", "u1", nil)

	tasks, err := env.tasks.ListBoardTasks(context.Background(), "b1", "u1")
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	_, err = env.tasks.ListBoardTasks(context.Background(), "b1", "u3")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}
