package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"boardhub/internal/adapter/http/dto"
	"boardhub/internal/adapter/http/mapper"
	"boardhub/internal/adapter/http/middleware"
	"boardhub/internal/adapter/http/validation"
	"boardhub/internal/core/domain"
	"boardhub/internal/core/ports"
	"boardhub/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ListHandler struct {
	listService ports.ListService
}

func NewListHandler(listService ports.ListService) *ListHandler {
	return &ListHandler{listService: listService}
}

func (h *ListHandler) CreateList(c *gin.Context) {
	lang := middleware.GetLang(c)
	principalID := middleware.GetPrincipal(c)

	boardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidListPayload, lang),
		)
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidListPayload, lang),
		)
		return
	}

	order := 0
	if req.Order != nil {
		order = *req.Order
	}

	list, err := h.listService.CreateList(c.Request.Context(), boardID, principalID, domain.CreateListInput{
		Title: title,
		Order: order,
		Notes: req.Notes,
	})
	if err != nil {
		respondError(c, err, "failed to create list", zap.String("board_id", boardID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToList(list))
}

func (h *ListHandler) ListBoardLists(c *gin.Context) {
	principalID := middleware.GetPrincipal(c)

	boardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	lists, err := h.listService.ListBoardLists(c.Request.Context(), boardID, principalID)
	if err != nil {
		respondError(c, err, "failed to list board lists", zap.String("board_id", boardID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToLists(lists))
}

func (h *ListHandler) UpdateList(c *gin.Context) {
	lang := middleware.GetLang(c)
	principalID := middleware.GetPrincipal(c)

	listID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidListPayload, lang),
		)
		return
	}

	var raw map[string]json.RawMessage
	var req dto.UpdateListRequest
	if json.Unmarshal(body, &raw) != nil || json.Unmarshal(body, &req) != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidListPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateListInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidListPayload, lang),
		)
		return
	}

	list, err := h.listService.UpdateList(c.Request.Context(), listID, principalID, input)
	if err != nil {
		respondError(c, err, "failed to update list", zap.String("list_id", listID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToList(list))
}

func (h *ListHandler) DeleteList(c *gin.Context) {
	principalID := middleware.GetPrincipal(c)

	listID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.listService.DeleteList(c.Request.Context(), listID, principalID); err != nil {
		respondError(c, err, "failed to delete list", zap.String("list_id", listID))
		return
	}

	c.Status(http.StatusNoContent)
}
