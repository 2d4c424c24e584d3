package handlers

import (
	"net/http"
	"strings"

	"boardhub/internal/adapter/http/dto"
	"boardhub/internal/adapter/http/mapper"
	"boardhub/internal/adapter/http/middleware"
	"boardhub/internal/core/domain"
	"boardhub/internal/core/ports"
	"boardhub/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type InvitationHandler struct {
	invitationService ports.InvitationService
}

func NewInvitationHandler(invitationService ports.InvitationService) *InvitationHandler {
	return &InvitationHandler{invitationService: invitationService}
}

func (h *InvitationHandler) CreateInvitation(c *gin.Context) {
	lang := middleware.GetLang(c)
	principalID := middleware.GetPrincipal(c)

	boardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidInvitationPayload, lang),
		)
		return
	}

	var email, username string
	if req.Email != nil {
		email = strings.TrimSpace(*req.Email)
	}
	if req.Username != nil {
		username = strings.TrimSpace(*req.Username)
	}
	if (email == "") == (username == "") {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidInvitationPayload, lang),
		)
		return
	}

	role := "member"
	if req.Role != nil {
		role = *req.Role
	}

	invitation, err := h.invitationService.Invite(c.Request.Context(), principalID, domain.CreateInvitationInput{
		BoardID:  boardID,
		Email:    email,
		Username: username,
		Role:     role,
		Message:  req.Message,
	})
	if err != nil {
		respondError(c, err, "failed to create invitation", zap.String("board_id", boardID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToInvitation(invitation))
}

func (h *InvitationHandler) ListBoardInvitations(c *gin.Context) {
	principalID := middleware.GetPrincipal(c)

	boardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	invitations, err := h.invitationService.ListForBoard(c.Request.Context(), boardID, principalID)
	if err != nil {
		respondError(c, err, "failed to list board invitations", zap.String("board_id", boardID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToInvitations(invitations))
}

func (h *InvitationHandler) ListMyInvitations(c *gin.Context) {
	principalID := middleware.GetPrincipal(c)

	invitations, err := h.invitationService.PendingForUser(c.Request.Context(), principalID)
	if err != nil {
		respondError(c, err, "failed to list pending invitations")
		return
	}

	c.JSON(http.StatusOK, mapper.ToInvitations(invitations))
}

func (h *InvitationHandler) RespondInvitation(c *gin.Context) {
	lang := middleware.GetLang(c)
	principalID := middleware.GetPrincipal(c)

	invitationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.RespondInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Accept == nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidInvitationPayload, lang),
		)
		return
	}

	if err := h.invitationService.Respond(c.Request.Context(), invitationID, principalID, *req.Accept); err != nil {
		respondError(c, err, "failed to respond to invitation", zap.String("invitation_id", invitationID))
		return
	}

	c.Status(http.StatusNoContent)
}
