package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetNotifications returns the session user's notifications with the
// unread count for badge display.
// GET /api/notifications
func (h *Handlers) GetNotifications(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	notifs := h.store.NotificationsForUser(user.ID)
	c.JSON(http.StatusOK, gin.H{
		"notifications": notifs,
		"unread":        h.store.UnreadNotificationCount(user.ID),
		"meta":          gin.H{"count": len(notifs)},
	})
}

// MarkNotificationsRead marks all of the session user's notifications
// as read. Read-marking is bulk only.
// POST /api/notifications/read
func (h *Handlers) MarkNotificationsRead(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	h.store.MarkNotificationsRead(user.ID)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "all_notifications_marked_read",
	})
}
