package handler

import (
	"net/http"

	"lello/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	svc *service.Service
	log *zap.Logger
}

func NewNotificationHandler(svc *service.Service, log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: log}
}

// GetMine godoc
// @Summary      Notifications addressed to the caller, newest first
// @Tags         Notifications
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  NotificationResponse
// @Router       /notifications [get]
func (h *NotificationHandler) GetMine(c *gin.Context) {
	notifications, err := h.svc.NotificationsFor(c.Request.Context(), principal(c).ID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(notifications, newNotificationResponse))
}
