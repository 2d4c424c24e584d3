package handlers

import (
	"errors"
	"net/http"

	"boardhub/internal/adapter/http/middleware"
	"boardhub/internal/core/domain"
	"boardhub/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// respondError maps a service error onto an HTTP response. Unknown
// errors are logged and reported as 500 without leaking detail.
func respondError(c *gin.Context, err error, logMsg string, fields ...zap.Field) {
	lang := middleware.GetLang(c)

	switch domain.KindOf(err) {
	case domain.KindNotFound:
		c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, messageKey(err), lang))
	case domain.KindUnauthorized:
		c.JSON(http.StatusForbidden, apierrors.CreateError(http.StatusForbidden, apierrors.MsgForbidden, lang))
	case domain.KindConflict:
		c.JSON(http.StatusConflict, apierrors.CreateError(http.StatusConflict, messageKey(err), lang))
	default:
		zap.L().Error(logMsg, append(fields, zap.Error(err))...)
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
	}
}

func messageKey(err error) string {
	switch {
	case errors.Is(err, domain.ErrBoardNotFound):
		return apierrors.MsgBoardNotFound
	case errors.Is(err, domain.ErrTaskNotFound):
		return apierrors.MsgTaskNotFound
	case errors.Is(err, domain.ErrListNotFound):
		return apierrors.MsgListNotFound
	case errors.Is(err, domain.ErrInvitationNotFound):
		return apierrors.MsgInvitationNotFound
	case errors.Is(err, domain.ErrUserNotFound):
		return apierrors.MsgUserNotFound
	case errors.Is(err, domain.ErrNotificationNotFound):
		return apierrors.MsgNotificationNotFound
	case errors.Is(err, domain.ErrSelfInvite):
		return apierrors.MsgSelfInvite
	case errors.Is(err, domain.ErrAlreadyMember):
		return apierrors.MsgAlreadyMember
	case errors.Is(err, domain.ErrDuplicateInvitation):
		return apierrors.MsgDuplicateInvitation
	case errors.Is(err, domain.ErrInvitationNotPending):
		return apierrors.MsgInvitationNotPending
	case errors.Is(err, domain.ErrInvitationExpired):
		return apierrors.MsgInvitationExpired
	case errors.Is(err, domain.ErrAssigneeNotMember):
		return apierrors.MsgAssigneeNotMember
	case errors.Is(err, domain.ErrTaskCompleted):
		return apierrors.MsgTaskCompleted
	case errors.Is(err, domain.ErrOwnerCannotBeRemoved):
		return apierrors.MsgOwnerNotRemovable
	}
	return apierrors.MsgInternalError
}

// parseIDParam validates a path parameter as a UUID and answers 400
// itself when the value is malformed.
func parseIDParam(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if err := uuid.Validate(id); err != nil {
		lang := middleware.GetLang(c)
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang))
		return "", false
	}
	return id, true
}
