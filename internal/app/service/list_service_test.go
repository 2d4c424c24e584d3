package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"boardhub/internal/core/domain"
)

func TestCreateList_WriteGate(t *testing.T) {
	env := newTestEnv(t)
	env.seedBoard(t, "b1", "u1", []string{"u2"}, false)

	_, err := env.lists.CreateList(context.Background(), "b1", "u3", domain.CreateListInput{Title: "Groceries"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	list, err := env.lists.CreateList(context.Background(), "b1", "u2", domain.CreateListInput{Title: "Groceries"})
	require.NoError(t, err)
	require.Equal(t, "b1", list.BoardID)
	require.Empty(t, list.Items)
}

func TestUpdateList_AssignsItemIDs(t *testing.T) {
	env := newTestEnv(t)
	env.seedBoard(t, "b1", "u1", nil, false)

	list, err := env.lists.CreateList(context.Background(), "b1", "u1", domain.CreateListInput{Title: "Groceries"})
	require.NoError(t, err)

	updated, err := env.lists.UpdateList(context.Background(), list.ID, "u1", domain.UpdateListInput{
		Items: []domain.ListItem{
			{Text: "Milk"},
			{ID: "existing", Text: "Bread", Completed: true},
		},
		ItemsSet: true,
	})
	require.NoError(t, err)
	require.Len(t, updated.Items, 2)
	require.NotEmpty(t, updated.Items[0].ID)
	require.Equal(t, "existing", updated.Items[1].ID)
}

func TestDeleteList_LeavesLinkedTasksUntouched(t *testing.T) {
	env := newTestEnv(t)
	env.seedBoard(t, "b1", "u1", nil, false)

	list, err := env.lists.CreateList(context.Background(), "b1", "u1", domain.CreateListInput{Title: "Groceries"})
	require.NoError(t, err)

	task := env.seedTask(t, "t1", "b1", "u1", func(task *domain.TaskItem) {
		task.ListID = &list.ID
	})

	require.NoError(t, env.lists.DeleteList(context.Background(), list.ID, "u1"))

	_, err = env.store.Lists().GetByID(context.Background(), list.ID)
	require.ErrorIs(t, err, domain.ErrListNotFound)

	// The task row is not part of the deletion: it keeps its list
	// reference even though the list is gone.
	got, err := env.store.Tasks().GetByID(context.Background(), task.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ListID)
	require.Equal(t, list.ID, *got.ListID)
}

func TestDeleteList_WriteGate(t *testing.T) {
	env := newTestEnv(t)
	env.seedBoard(t, "b1", "u1", nil, false)

	list, err := env.lists.CreateList(context.Background(), "b1", "u1", domain.CreateListInput{Title: "Groceries"})
	require.NoError(t, err)

	err = env.lists.DeleteList(context.Background(), list.ID, "u3")
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	require.ErrorIs(t,
		env.lists.DeleteList(context.Background(), "nope", "u1"),
		domain.ErrListNotFound)
}
