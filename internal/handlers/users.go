package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/motmot/nexlink/backend/internal/store"
)

// GetUser returns a user's profile plus computed presence.
// GET /api/users/:id
func (h *Handlers) GetUser(c *gin.Context) {
	user := h.store.GetUserByID(c.Param("id"))
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":   user,
		"online": h.store.IsUserOnline(user.ID),
	})
}

// UpdateProfile applies a partial profile update to the session user.
// The id in the path must be the session user; the core trusts the
// caller beyond that.
// PATCH /api/users/:id
func (h *Handlers) UpdateProfile(c *gin.Context) {
	var req struct {
		Name   *string `json:"name"`
		Avatar *string `json:"avatar"`
		Bio    *string `json:"bio"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.store.UpdateProfile(c.Param("id"), store.ProfileUpdate{
		Name:   req.Name,
		Avatar: req.Avatar,
		Bio:    req.Bio,
	}) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// Heartbeat refreshes the user's presence stamp.
// POST /api/users/:id/heartbeat
func (h *Handlers) Heartbeat(c *gin.Context) {
	h.store.Heartbeat(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Follow makes the session user follow the target.
// POST /api/users/:id/follow
func (h *Handlers) Follow(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	h.store.Follow(user.ID, c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"status": "following"})
}

// Unfollow removes the follow edge.
// DELETE /api/users/:id/follow
func (h *Handlers) Unfollow(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	h.store.Unfollow(user.ID, c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"status": "unfollowed"})
}

// Block blocks the target and severs any existing relationship.
// POST /api/users/:id/block
func (h *Handlers) Block(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	h.store.Block(user.ID, c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"status": "blocked"})
}

// Unblock removes the block markers only; severed relationships stay
// severed.
// DELETE /api/users/:id/block
func (h *Handlers) Unblock(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	h.store.Unblock(user.ID, c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"status": "unblocked"})
}

// SendFriendRequest sends a request from the session user.
// POST /api/users/:id/friend-request
func (h *Handlers) SendFriendRequest(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	h.store.SendFriendRequest(user.ID, c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"status": "requested"})
}

// AcceptFriendRequest accepts the request from :id on the session
// user.
// POST /api/users/:id/friend-request/accept
func (h *Handlers) AcceptFriendRequest(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	h.store.AcceptFriendRequest(user.ID, c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"status": "accepted"})
}

// RejectFriendRequest drops the pending request from :id.
// POST /api/users/:id/friend-request/reject
func (h *Handlers) RejectFriendRequest(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	h.store.RejectFriendRequest(user.ID, c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"status": "rejected"})
}
