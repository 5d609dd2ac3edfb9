package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/motmot/nexlink/backend/internal/assistant"
	"go.uber.org/zap"
)

// InvokeTool executes a privileged tool invocation from the automation
// caller: a tool name plus a loose JSON argument record. Unknown names
// come back as a failure result with HTTP 200, matching the
// conversational relay contract.
// POST /api/assistant/tools
func (h *Handlers) InvokeTool(c *gin.Context) {
	var req struct {
		Name string          `json:"name" binding:"required"`
		Args json.RawMessage `json:"args"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.log.Info("Executing tool", zap.String("tool", req.Name))
	result := assistant.Execute(h.store, req.Name, req.Args)
	c.JSON(http.StatusOK, result)
}
