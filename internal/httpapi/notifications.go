package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListNotifications returns the caller's own notifications, newest first.
func (h Handlers) ListNotifications(c *gin.Context) {
	u, ok := h.currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.Store.NotificationsFor(u.ID))
}

func (h Handlers) MarkNotificationRead(c *gin.Context) {
	h.Store.MarkNotificationRead(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h Handlers) MarkAllNotificationsRead(c *gin.Context) {
	u, ok := h.currentUser(c)
	if !ok {
		return
	}
	h.Store.MarkAllNotificationsRead(u.ID)
	c.Status(http.StatusNoContent)
}
