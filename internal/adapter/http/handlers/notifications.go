package handlers

import (
	"net/http"

	"boardhub/internal/adapter/http/mapper"
	"boardhub/internal/adapter/http/middleware"
	"boardhub/internal/core/ports"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	notificationService ports.NotificationService
}

func NewNotificationHandler(notificationService ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) ListMyNotifications(c *gin.Context) {
	principalID := middleware.GetPrincipal(c)

	notifications, err := h.notificationService.ListForUser(c.Request.Context(), principalID)
	if err != nil {
		respondError(c, err, "failed to list notifications")
		return
	}

	c.JSON(http.StatusOK, mapper.ToNotifications(notifications))
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	principalID := middleware.GetPrincipal(c)

	notificationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	notification, err := h.notificationService.MarkRead(c.Request.Context(), notificationID, principalID)
	if err != nil {
		respondError(c, err, "failed to mark notification read", zap.String("notification_id", notificationID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToNotification(notification))
}
