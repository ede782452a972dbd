package api

import (
	"net/http"

	"github.com/ManasaYK17/MindPulse-AI/middleware"
	"github.com/ManasaYK17/MindPulse-AI/utils"

	"github.com/gin-gonic/gin"
)

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatbotHandler answers a single chatbot message. The reply may be a
// degraded error string; the endpoint itself never fails on upstream
// errors.
// POST /api/chatbot
func (h *APIHandler) ChatbotHandler(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}
	reply := h.chatService.Chat(c.Request.Context(), req.Message)
	c.JSON(http.StatusOK, gin.H{"code": 200, "message": "OK", "data": gin.H{"reply": reply}})
}

// FutureSelfHandler continues the session-held "future self" conversation.
// POST /api/future-self
func (h *APIHandler) FutureSelfHandler(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}
	conversation, err := h.chatService.FutureSelf(c.Request.Context(), middleware.UserID(c), req.Message)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to process message.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 200, "message": "OK", "data": gin.H{"conversation": conversation}})
}
