package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetFeed returns all posts, most recent first.
// GET /api/feed
func (h *Handlers) GetFeed(c *gin.Context) {
	posts := h.store.Feed()
	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"meta":  gin.H{"count": len(posts)},
	})
}

// CreatePost publishes a post for the session user and runs the
// notification fan-out (mentions, @everyone, share).
// POST /api/posts
func (h *Handlers) CreatePost(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req struct {
		Content      string `json:"content"`
		Image        string `json:"image"`
		Video        string `json:"video"`
		SharedFromID string `json:"sharedFromId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post := h.store.AddPost(user.ID, req.Content, req.Image, req.Video, req.SharedFromID)
	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// ToggleLike flips the session user's like on a post.
// POST /api/posts/:id/like
func (h *Handlers) ToggleLike(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	h.store.ToggleLike(c.Param("id"), user.ID)
	c.JSON(http.StatusOK, gin.H{"status": "toggled"})
}

// GetComments lists a post's comments in creation order.
// GET /api/posts/:id/comments
func (h *Handlers) GetComments(c *gin.Context) {
	comments := h.store.CommentsForPost(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"comments": comments,
		"meta":     gin.H{"count": len(comments)},
	})
}

// CreateComment appends a comment by the session user.
// POST /api/posts/:id/comments
func (h *Handlers) CreateComment(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment := h.store.AddComment(c.Param("id"), user.ID, req.Content)
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}
