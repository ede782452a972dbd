package api

import (
	"errors"
	"net/http"

	"github.com/ManasaYK17/MindPulse-AI/middleware"
	"github.com/ManasaYK17/MindPulse-AI/services"
	"github.com/ManasaYK17/MindPulse-AI/utils"

	"github.com/gin-gonic/gin"
)

// PeerSupportHandler joins (or waits for) a peer chat session and returns
// its message history.
// GET /api/peer-support
func (h *APIHandler) PeerSupportHandler(c *gin.Context) {
	view, err := h.peerService.JoinOrWait(middleware.UserID(c))
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to load peer support.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 200, "message": "OK", "data": view})
}

type peerMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// PeerMessageHandler posts a message into the user's active peer session.
// POST /api/peer-support/messages
func (h *APIHandler) PeerMessageHandler(c *gin.Context) {
	var req peerMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}
	if err := h.peerService.SendMessage(middleware.UserID(c), req.Message); err != nil {
		if errors.Is(err, services.ErrEmptyMessage) {
			utils.SendJSONError(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to send message.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 200, "message": "Message sent"})
}
