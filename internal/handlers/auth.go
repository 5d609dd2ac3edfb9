package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/motmot/nexlink/backend/internal/errors"
)

// Signup creates an account and, when no session is open, makes it the
// active session.
// POST /api/auth/signup
func (h *Handlers) Signup(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		Avatar   string `json:"avatar"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.Signup(req.Name, req.Email, req.Password, req.Avatar)
	if err != nil {
		var apiErr *apierrors.APIError
		if errors.As(err, &apiErr) {
			c.JSON(apiErr.Status, gin.H{"error": apiErr.Code, "message": apiErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "signup_failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// Login authenticates by exact email and password. Wrong credentials
// and a banned account produce the same generic failure.
// POST /api/auth/login
func (h *Handlers) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := h.store.Login(req.Email, req.Password)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "invalid_credentials",
			"message": "Invalid credentials or you have been banned.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout closes the active session.
// POST /api/auth/logout
func (h *Handlers) Logout(c *gin.Context) {
	h.store.Logout()
	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

// Me returns the active session's user.
// GET /api/auth/me
func (h *Handlers) Me(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
