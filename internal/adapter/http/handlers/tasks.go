package handlers

import (
	"encoding/json"
	"net/http"

	"boardhub/internal/adapter/http/dto"
	"boardhub/internal/adapter/http/mapper"
	"boardhub/internal/adapter/http/middleware"
	"boardhub/internal/adapter/http/validation"
	"boardhub/internal/core/ports"
	"boardhub/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	principalID := middleware.GetPrincipal(c)

	boardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateTaskInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), boardID, principalID, input)
	if err != nil {
		respondError(c, err, "failed to create task", zap.String("board_id", boardID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTask(task))
}

func (h *TaskHandler) ListBoardTasks(c *gin.Context) {
	principalID := middleware.GetPrincipal(c)

	boardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tasks, err := h.taskService.ListBoardTasks(c.Request.Context(), boardID, principalID)
	if err != nil {
		respondError(c, err, "failed to list board tasks", zap.String("board_id", boardID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTasks(tasks))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	principalID := middleware.GetPrincipal(c)

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	var raw map[string]json.RawMessage
	var req dto.UpdateTaskRequest
	if json.Unmarshal(body, &raw) != nil || json.Unmarshal(body, &req) != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, principalID, input)
	if err != nil {
		respondError(c, err, "failed to update task", zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTask(task))
}

func (h *TaskHandler) AssignTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	principalID := middleware.GetPrincipal(c)

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AssignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	if req.AssigneeID != nil && uuid.Validate(*req.AssigneeID) != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return
	}

	task, err := h.taskService.AssignTask(c.Request.Context(), taskID, principalID, req.AssigneeID)
	if err != nil {
		respondError(c, err, "failed to assign task", zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTask(task))
}

func (h *TaskHandler) ChangeTaskList(c *gin.Context) {
	lang := middleware.GetLang(c)
	principalID := middleware.GetPrincipal(c)

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.ChangeTaskListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	if req.ListID != nil && uuid.Validate(*req.ListID) != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return
	}

	task, err := h.taskService.ChangeTaskList(c.Request.Context(), taskID, principalID, req.ListID)
	if err != nil {
		respondError(c, err, "failed to move task", zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTask(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	principalID := middleware.GetPrincipal(c)

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID, principalID); err != nil {
		respondError(c, err, "failed to delete task", zap.String("task_id", taskID))
		return
	}

	c.Status(http.StatusNoContent)
}
