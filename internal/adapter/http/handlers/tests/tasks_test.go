package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"boardhub/internal/adapter/http/dto"
	"boardhub/internal/adapter/http/handlers"
	"boardhub/internal/adapter/http/middleware"
	"boardhub/internal/core/domain"
	"boardhub/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const taskID = "9d4f1c33-2a68-4f7e-b1c5-57e4a9d0b201"

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) CreateTask(ctx context.Context, boardID, principalID string, input domain.CreateTaskInput) (domain.TaskItem, error) {
	args := m.Called(ctx, boardID, principalID, input)
	return args.Get(0).(domain.TaskItem), args.Error(1)
}

func (m *taskServiceMock) ListBoardTasks(ctx context.Context, boardID, principalID string) ([]domain.TaskItem, error) {
	args := m.Called(ctx, boardID, principalID)

	var tasks []domain.TaskItem
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.TaskItem)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, taskID, principalID string, input domain.UpdateTaskInput) (domain.TaskItem, error) {
	args := m.Called(ctx, taskID, principalID, input)
	return args.Get(0).(domain.TaskItem), args.Error(1)
}

func (m *taskServiceMock) AssignTask(ctx context.Context, taskID, principalID string, assigneeID *string) (domain.TaskItem, error) {
	args := m.Called(ctx, taskID, principalID, assigneeID)
	return args.Get(0).(domain.TaskItem), args.Error(1)
}

func (m *taskServiceMock) ChangeTaskList(ctx context.Context, taskID, principalID string, listID *string) (domain.TaskItem, error) {
	args := m.Called(ctx, taskID, principalID, listID)
	return args.Get(0).(domain.TaskItem), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, taskID, principalID string) error {
	args := m.Called(ctx, taskID, principalID)
	return args.Error(0)
}

func newTaskRouter(handler *handlers.TaskHandler) *gin.Engine {
	router := gin.New()
	group := router.Group("/api", middleware.LanguageMiddleware(), middleware.PrincipalMiddleware())
	group.POST("/boards/:id/tasks", handler.CreateTask)
	group.GET("/boards/:id/tasks", handler.ListBoardTasks)
	group.PATCH("/tasks/:id", handler.UpdateTask)
	group.PUT("/tasks/:id/assignee", handler.AssignTask)
	group.PUT("/tasks/:id/list", handler.ChangeTaskList)
	group.DELETE("/tasks/:id", handler.DeleteTask)
	return router
}

func TestTaskHandler_CreateTask_DefaultsApplied(t *testing.T) {
	createdAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("CreateTask", mock.Anything, boardID, principalID, domain.CreateTaskInput{
		Title:    "Fix login flow",
		Status:   domain.TaskStatusTodo,
		Priority: domain.TaskPriorityMedium,
	}).Return(domain.TaskItem{
		ID:          taskID,
		BoardID:     boardID,
		Title:       "Fix login flow",
		Status:      domain.TaskStatusTodo,
		Priority:    domain.TaskPriorityMedium,
		Tags:        []string{},
		CreatedByID: principalID,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}, nil).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	rec := doRequest(newTaskRouter(handler), http.MethodPost, "/api/boards/"+boardID+"/tasks",
		[]byte(`{"title":"Fix login flow"}`))

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "todo", got.Status)
	require.Equal(t, "medium", got.Priority)
	require.Equal(t, []string{}, got.Tags)
	require.Equal(t, principalID, got.CreatedByID)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_InvalidStatus(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)

	rec := doRequest(newTaskRouter(handler), http.MethodPost, "/api/boards/"+boardID+"/tasks",
		[]byte(`{"title":"Fix login flow","status":"blocked"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid task payload", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateTask_MergePatchFields(t *testing.T) {
	updatedAt := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)
	status := domain.TaskStatusDone
	completed := true

	serviceMock := new(taskServiceMock)
	serviceMock.On("UpdateTask", mock.Anything, taskID, principalID, domain.UpdateTaskInput{
		Status:      &status,
		IsCompleted: &completed,
	}).Return(domain.TaskItem{
		ID:          taskID,
		BoardID:     boardID,
		Title:       "Fix login flow",
		Status:      domain.TaskStatusDone,
		Priority:    domain.TaskPriorityMedium,
		IsCompleted: true,
		CreatedByID: principalID,
		UpdatedAt:   updatedAt,
	}, nil).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	rec := doRequest(newTaskRouter(handler), http.MethodPatch, "/api/tasks/"+taskID,
		[]byte(`{"status":"done","is_completed":true}`))

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "done", got.Status)
	require.True(t, got.IsCompleted)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateTask_NullDueDateClears(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("UpdateTask", mock.Anything, taskID, principalID, domain.UpdateTaskInput{
		DueDateSet: true,
	}).Return(domain.TaskItem{
		ID:       taskID,
		BoardID:  boardID,
		Title:    "Fix login flow",
		Status:   domain.TaskStatusTodo,
		Priority: domain.TaskPriorityMedium,
	}, nil).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	rec := doRequest(newTaskRouter(handler), http.MethodPatch, "/api/tasks/"+taskID,
		[]byte(`{"due_date":null}`))

	require.Equal(t, http.StatusOK, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateTask_NullTitleRejected(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)

	rec := doRequest(newTaskRouter(handler), http.MethodPatch, "/api/tasks/"+taskID,
		[]byte(`{"title":null}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_AssignTask_Success(t *testing.T) {
	assignee := otherUserID

	serviceMock := new(taskServiceMock)
	serviceMock.On("AssignTask", mock.Anything, taskID, principalID, &assignee).
		Return(domain.TaskItem{
			ID:           taskID,
			BoardID:      boardID,
			Title:        "Fix login flow",
			Status:       domain.TaskStatusTodo,
			Priority:     domain.TaskPriorityMedium,
			AssignedToID: &assignee,
		}, nil).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	rec := doRequest(newTaskRouter(handler), http.MethodPut, "/api/tasks/"+taskID+"/assignee",
		[]byte(`{"assignee_id":"`+otherUserID+`"}`))

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotNil(t, got.AssignedToID)
	require.Equal(t, otherUserID, *got.AssignedToID)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_AssignTask_AssigneeNotMember(t *testing.T) {
	assignee := otherUserID

	serviceMock := new(taskServiceMock)
	serviceMock.On("AssignTask", mock.Anything, taskID, principalID, &assignee).
		Return(domain.TaskItem{}, domain.ErrAssigneeNotMember).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	rec := doRequest(newTaskRouter(handler), http.MethodPut, "/api/tasks/"+taskID+"/assignee",
		[]byte(`{"assignee_id":"`+otherUserID+`"}`))

	require.Equal(t, http.StatusConflict, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "The assignee is not a member of this board", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ChangeTaskList_ForeignList(t *testing.T) {
	listID := "9d4f1c33-2a68-4f7e-b1c5-57e4a9d0b301"

	serviceMock := new(taskServiceMock)
	serviceMock.On("ChangeTaskList", mock.Anything, taskID, principalID, &listID).
		Return(domain.TaskItem{}, domain.ErrListNotFound).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	rec := doRequest(newTaskRouter(handler), http.MethodPut, "/api/tasks/"+taskID+"/list",
		[]byte(`{"list_id":"`+listID+`"}`))

	require.Equal(t, http.StatusNotFound, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask_CompletedConflict(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("DeleteTask", mock.Anything, taskID, principalID).
		Return(domain.ErrTaskCompleted).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	rec := doRequest(newTaskRouter(handler), http.MethodDelete, "/api/tasks/"+taskID, nil)

	require.Equal(t, http.StatusConflict, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Completed tasks cannot be deleted", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListBoardTasks_Success(t *testing.T) {
	createdAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	dueDate := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("ListBoardTasks", mock.Anything, boardID, principalID).Return(
		[]domain.TaskItem{
			{
				ID:          taskID,
				BoardID:     boardID,
				Title:       "Fix login flow",
				Status:      domain.TaskStatusInProgress,
				Priority:    domain.TaskPriorityHigh,
				Tags:        []string{"auth"},
				CreatedByID: principalID,
				DueDate:     &dueDate,
				CreatedAt:   createdAt,
				UpdatedAt:   createdAt,
			},
		},
		nil,
	).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	rec := doRequest(newTaskRouter(handler), http.MethodGet, "/api/boards/"+boardID+"/tasks", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "in_progress", got[0].Status)
	require.Equal(t, "high", got[0].Priority)
	require.Equal(t, "2026-03-20", *got[0].DueDate)
	serviceMock.AssertExpectations(t)
}
