package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/motmot/nexlink/backend/internal/models"
)

// GetStories lists active stories. The expiry sweep always runs before
// the listing.
// GET /api/stories
func (h *Handlers) GetStories(c *gin.Context) {
	stories := h.store.ActiveStories()
	c.JSON(http.StatusOK, gin.H{
		"stories": stories,
		"meta":    gin.H{"count": len(stories)},
	})
}

// CreateStory uploads a story for the session user.
// POST /api/stories
func (h *Handlers) CreateStory(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req struct {
		Image string             `json:"image" binding:"required"`
		Texts []models.StoryText `json:"texts"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	story := h.store.AddStory(user.ID, req.Image, req.Texts)
	c.JSON(http.StatusCreated, gin.H{"story": story})
}

// ViewStory records the session user as a viewer.
// POST /api/stories/:id/view
func (h *Handlers) ViewStory(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	h.store.MarkStoryViewed(c.Param("id"), user.ID)
	c.JSON(http.StatusOK, gin.H{"status": "viewed"})
}
