package validation

import (
	"encoding/json"
	"testing"
	"time"

	"boardhub/internal/adapter/http/dto"
	"boardhub/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func decodeTaskPatch(t *testing.T, body string) (dto.UpdateTaskRequest, map[string]json.RawMessage) {
	t.Helper()

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &raw))

	var req dto.UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req, raw
}

func TestBuildUpdateTaskInput_AbsentFieldsUntouched(t *testing.T) {
	req, raw := decodeTaskPatch(t, `{"title":"New title"}`)

	input, err := BuildUpdateTaskInput(req, raw)
	require.NoError(t, err)

	require.NotNil(t, input.Title)
	require.Equal(t, "New title", *input.Title)
	require.Nil(t, input.Status)
	require.False(t, input.DescriptionSet)
	require.False(t, input.TagsSet)
	require.False(t, input.DueDateSet)
	require.False(t, input.AssignedToSet)
}

func TestBuildUpdateTaskInput_NullClearsNullableFields(t *testing.T) {
	req, raw := decodeTaskPatch(t, `{"description":null,"due_date":null,"assigned_to_id":null}`)

	input, err := BuildUpdateTaskInput(req, raw)
	require.NoError(t, err)

	require.True(t, input.DescriptionSet)
	require.Nil(t, input.Description)
	require.True(t, input.DueDateSet)
	require.Nil(t, input.DueDate)
	require.True(t, input.AssignedToSet)
	require.Nil(t, input.AssignedToID)
}

func TestBuildUpdateTaskInput_ParsesDueDate(t *testing.T) {
	req, raw := decodeTaskPatch(t, `{"due_date":"2026-04-01"}`)

	input, err := BuildUpdateTaskInput(req, raw)
	require.NoError(t, err)

	require.True(t, input.DueDateSet)
	require.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), *input.DueDate)
}

func TestBuildUpdateTaskInput_Rejections(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{name: "empty patch", body: `{}`},
		{name: "null title", body: `{"title":null}`},
		{name: "blank title", body: `{"title":"  "}`},
		{name: "null status", body: `{"status":null}`},
		{name: "unknown status", body: `{"status":"blocked"}`},
		{name: "unknown priority", body: `{"priority":"urgent"}`},
		{name: "null tags", body: `{"tags":null}`},
		{name: "malformed due date", body: `{"due_date":"01/04/2026"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, raw := decodeTaskPatch(t, tc.body)

			_, err := BuildUpdateTaskInput(req, raw)
			require.ErrorIs(t, err, ErrInvalidTaskPayload)
		})
	}
}

func TestBuildUpdateTaskInput_TagsReplaced(t *testing.T) {
	req, raw := decodeTaskPatch(t, `{"tags":["backend","urgent"]}`)

	input, err := BuildUpdateTaskInput(req, raw)
	require.NoError(t, err)

	require.True(t, input.TagsSet)
	require.Equal(t, []string{"backend", "urgent"}, input.Tags)
}

func TestBuildCreateTaskInput_Defaults(t *testing.T) {
	input, err := BuildCreateTaskInput(dto.CreateTaskRequest{Title: " Fix login flow "})
	require.NoError(t, err)

	require.Equal(t, "Fix login flow", input.Title)
	require.Equal(t, domain.TaskStatusTodo, input.Status)
	require.Equal(t, domain.TaskPriorityMedium, input.Priority)
	require.Nil(t, input.DueDate)
}
