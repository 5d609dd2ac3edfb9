package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/motmot/nexlink/backend/internal/models"
	"github.com/motmot/nexlink/backend/internal/store"
)

// GetChats lists the session user's chats, most recent message first,
// split into active and archived per the user's own archive marks.
// GET /api/chats
func (h *Handlers) GetChats(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	all := h.store.ChatsForUser(user.ID)
	active := make([]*models.Chat, 0, len(all))
	archived := make([]*models.Chat, 0)
	for _, chat := range all {
		if chat.ArchivedFor(user.ID) {
			archived = append(archived, chat)
		} else {
			active = append(active, chat)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"chats":    active,
		"archived": archived,
	})
}

// CreateChat starts a conversation. Private chats are deduplicated per
// member pair; the reused chat comes back un-archived for everyone.
// POST /api/chats
func (h *Handlers) CreateChat(c *gin.Context) {
	if _, ok := h.currentUser(c); !ok {
		return
	}

	var req struct {
		Members []string        `json:"members" binding:"required"`
		Type    models.ChatType `json:"type" binding:"required"`
		Name    string          `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Type != models.ChatTypePrivate && req.Type != models.ChatTypeGroup {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_chat_type"})
		return
	}

	chat := h.store.CreateChat(req.Members, req.Type, req.Name)
	c.JSON(http.StatusCreated, gin.H{"chat": chat})
}

// GetMessages returns a chat's messages in send order.
// GET /api/chats/:id/messages
func (h *Handlers) GetMessages(c *gin.Context) {
	messages := h.store.MessagesForChat(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"messages": messages,
		"meta":     gin.H{"count": len(messages)},
	})
}

// SendMessage appends a message from the session user. When the chat
// includes the assistant account, a background reply is triggered; it
// lands later as an ordinary send.
// POST /api/chats/:id/messages
func (h *Handlers) SendMessage(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req struct {
		Content       string `json:"content"`
		Image         string `json:"image"`
		StorySnapshot string `json:"storySnapshot"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chatID := c.Param("id")
	msg := h.store.SendMessage(chatID, user.ID, req.Content, req.Image, req.StorySnapshot)

	if h.responder != nil {
		if chat := h.store.GetChat(chatID); chat != nil && chat.HasMember(store.AssistantID) {
			h.responder.ReplyToChat(chatID, req.Content)
		}
	}

	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// MarkChatRead zeroes the session user's unread counter; called when
// the chat gains focus.
// POST /api/chats/:id/read
func (h *Handlers) MarkChatRead(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	h.store.MarkChatRead(c.Param("id"), user.ID)
	c.JSON(http.StatusOK, gin.H{"status": "read"})
}

// ArchiveChat hides the chat for the session user only.
// POST /api/chats/:id/archive
func (h *Handlers) ArchiveChat(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	h.store.ArchiveChat(c.Param("id"), user.ID)
	c.JSON(http.StatusOK, gin.H{"status": "archived"})
}

// UnarchiveChat restores the chat for the session user.
// DELETE /api/chats/:id/archive
func (h *Handlers) UnarchiveChat(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	h.store.UnarchiveChat(c.Param("id"), user.ID)
	c.JSON(http.StatusOK, gin.H{"status": "unarchived"})
}

// Group administration endpoints. Restricting these to admins is the
// view's responsibility; the core accepts any caller.

// UpdateGroupInfo partially updates group name and image.
// PATCH /api/chats/:id
func (h *Handlers) UpdateGroupInfo(c *gin.Context) {
	var req struct {
		Name  string `json:"name"`
		Image string `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.store.UpdateGroupInfo(c.Param("id"), req.Name, req.Image)
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// AddGroupMember appends a member to the group.
// POST /api/chats/:id/members
func (h *Handlers) AddGroupMember(c *gin.Context) {
	var req struct {
		UserID string `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.store.AddGroupMember(c.Param("id"), req.UserID)
	c.JSON(http.StatusOK, gin.H{"status": "added"})
}

// RemoveGroupMember removes a member (and admin mark if present).
// DELETE /api/chats/:id/members/:userId
func (h *Handlers) RemoveGroupMember(c *gin.Context) {
	h.store.RemoveGroupMember(c.Param("id"), c.Param("userId"))
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

// MakeGroupAdmin promotes a member.
// POST /api/chats/:id/admins
func (h *Handlers) MakeGroupAdmin(c *gin.Context) {
	var req struct {
		UserID string `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.store.MakeGroupAdmin(c.Param("id"), req.UserID)
	c.JSON(http.StatusOK, gin.H{"status": "promoted"})
}

// LeaveGroup removes the session user from the group.
// POST /api/chats/:id/leave
func (h *Handlers) LeaveGroup(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	h.store.LeaveGroup(c.Param("id"), user.ID)
	c.JSON(http.StatusOK, gin.H{"status": "left"})
}
