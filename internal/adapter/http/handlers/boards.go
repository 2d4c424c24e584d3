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

type BoardHandler struct {
	boardService ports.BoardService
}

func NewBoardHandler(boardService ports.BoardService) *BoardHandler {
	return &BoardHandler{boardService: boardService}
}

func (h *BoardHandler) CreateBoard(c *gin.Context) {
	lang := middleware.GetLang(c)
	principalID := middleware.GetPrincipal(c)

	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidBoardPayload, lang),
		)
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidBoardPayload, lang),
		)
		return
	}

	isPublic := false
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	board, err := h.boardService.CreateBoard(c.Request.Context(), principalID, domain.CreateBoardInput{
		Title:       title,
		Description: req.Description,
		IsPublic:    isPublic,
		Columns:     req.Columns,
	})
	if err != nil {
		respondError(c, err, "failed to create board")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToBoard(board))
}

func (h *BoardHandler) ListBoards(c *gin.Context) {
	principalID := middleware.GetPrincipal(c)

	boards, err := h.boardService.ListBoards(c.Request.Context(), principalID)
	if err != nil {
		respondError(c, err, "failed to list boards")
		return
	}

	c.JSON(http.StatusOK, mapper.ToBoards(boards))
}

func (h *BoardHandler) GetBoard(c *gin.Context) {
	principalID := middleware.GetPrincipal(c)

	boardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	board, err := h.boardService.GetBoard(c.Request.Context(), boardID, principalID)
	if err != nil {
		respondError(c, err, "failed to get board", zap.String("board_id", boardID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToBoard(board))
}

func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	lang := middleware.GetLang(c)
	principalID := middleware.GetPrincipal(c)

	boardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidBoardPayload, lang),
		)
		return
	}

	var raw map[string]json.RawMessage
	var req dto.UpdateBoardRequest
	if json.Unmarshal(body, &raw) != nil || json.Unmarshal(body, &req) != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidBoardPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateBoardInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidBoardPayload, lang),
		)
		return
	}

	board, err := h.boardService.UpdateBoard(c.Request.Context(), boardID, principalID, input)
	if err != nil {
		respondError(c, err, "failed to update board", zap.String("board_id", boardID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToBoard(board))
}

func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	principalID := middleware.GetPrincipal(c)

	boardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.boardService.DeleteBoard(c.Request.Context(), boardID, principalID); err != nil {
		respondError(c, err, "failed to delete board", zap.String("board_id", boardID))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BoardHandler) RemoveMember(c *gin.Context) {
	principalID := middleware.GetPrincipal(c)

	boardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	memberID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	if err := h.boardService.RemoveMember(c.Request.Context(), boardID, memberID, principalID); err != nil {
		respondError(c, err, "failed to remove board member", zap.String("board_id", boardID))
		return
	}

	c.Status(http.StatusNoContent)
}
