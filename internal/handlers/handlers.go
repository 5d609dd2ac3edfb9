// Package handlers exposes the store's operation surface over HTTP.
// The views are thin: every endpoint invokes exactly one store
// operation and returns its result. The process is single-session, so
// endpoints act for the store's current user; there is no token layer.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/motmot/nexlink/backend/internal/assistant"
	"github.com/motmot/nexlink/backend/internal/models"
	"github.com/motmot/nexlink/backend/internal/store"
	"go.uber.org/zap"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	store     *store.Store
	responder *assistant.Responder
	log       *zap.Logger
}

// NewHandlers creates a new handlers instance
func NewHandlers(st *store.Store, log *zap.Logger) *Handlers {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handlers{store: st, log: log}
}

// SetResponder wires the assistant responder so sends into a chat with
// the assistant trigger a reply.
func (h *Handlers) SetResponder(r *assistant.Responder) {
	h.responder = r
}

// RegisterRoutes attaches all endpoints to the router.
func (h *Handlers) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.POST("/auth/signup", h.Signup)
	api.POST("/auth/login", h.Login)
	api.POST("/auth/logout", h.Logout)
	api.GET("/auth/me", h.Me)

	api.GET("/users/:id", h.GetUser)
	api.PATCH("/users/:id", h.UpdateProfile)
	api.POST("/users/:id/heartbeat", h.Heartbeat)
	api.POST("/users/:id/follow", h.Follow)
	api.DELETE("/users/:id/follow", h.Unfollow)
	api.POST("/users/:id/block", h.Block)
	api.DELETE("/users/:id/block", h.Unblock)
	api.POST("/users/:id/friend-request", h.SendFriendRequest)
	api.POST("/users/:id/friend-request/accept", h.AcceptFriendRequest)
	api.POST("/users/:id/friend-request/reject", h.RejectFriendRequest)

	api.GET("/feed", h.GetFeed)
	api.POST("/posts", h.CreatePost)
	api.POST("/posts/:id/like", h.ToggleLike)
	api.GET("/posts/:id/comments", h.GetComments)
	api.POST("/posts/:id/comments", h.CreateComment)

	api.GET("/stories", h.GetStories)
	api.POST("/stories", h.CreateStory)
	api.POST("/stories/:id/view", h.ViewStory)

	api.GET("/chats", h.GetChats)
	api.POST("/chats", h.CreateChat)
	api.GET("/chats/:id/messages", h.GetMessages)
	api.POST("/chats/:id/messages", h.SendMessage)
	api.POST("/chats/:id/read", h.MarkChatRead)
	api.POST("/chats/:id/archive", h.ArchiveChat)
	api.DELETE("/chats/:id/archive", h.UnarchiveChat)
	api.PATCH("/chats/:id", h.UpdateGroupInfo)
	api.POST("/chats/:id/members", h.AddGroupMember)
	api.DELETE("/chats/:id/members/:userId", h.RemoveGroupMember)
	api.POST("/chats/:id/admins", h.MakeGroupAdmin)
	api.POST("/chats/:id/leave", h.LeaveGroup)

	api.GET("/notifications", h.GetNotifications)
	api.POST("/notifications/read", h.MarkNotificationsRead)

	api.POST("/assistant/tools", h.InvokeTool)
}

// currentUser resolves the active session or writes a 401.
func (h *Handlers) currentUser(c *gin.Context) (*models.User, bool) {
	user := h.store.CurrentUser()
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not_authenticated"})
		return nil, false
	}
	return user, true
}
