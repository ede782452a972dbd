package api

import (
	"errors"
	"net/http"

	"github.com/ManasaYK17/MindPulse-AI/middleware"
	"github.com/ManasaYK17/MindPulse-AI/services"
	"github.com/ManasaYK17/MindPulse-AI/utils"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
}

// RegisterHandler creates a new student account.
// POST /api/auth/register
func (h *APIHandler) RegisterHandler(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}

	user, err := h.authService.Register(req.Username, req.Password, req.Phone)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			utils.SendJSONError(c, http.StatusConflict, err.Error(), nil)
			return
		}
		utils.SendJSONError(c, http.StatusInternalServerError, "Registration failed.", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"code":    201,
		"message": "Registration successful",
		"data":    user,
	})
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler verifies credentials and sets the session cookie.
// POST /api/auth/login
func (h *APIHandler) LoginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.SendJSONError(c, http.StatusUnauthorized, err.Error(), nil)
			return
		}
		utils.SendJSONError(c, http.StatusInternalServerError, "Login failed.", err)
		return
	}

	c.SetCookie(middleware.SessionCookie, token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "Login successful",
		"data":    gin.H{"token": token, "user": user},
	})
}

// LogoutHandler deletes the session and clears the cookie.
// POST /api/auth/logout
func (h *APIHandler) LogoutHandler(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil && token != "" {
		if err := h.authService.Logout(c.Request.Context(), token); err != nil {
			utils.SendJSONError(c, http.StatusInternalServerError, "Logout failed.", err)
			return
		}
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"code": 200, "message": "Logged out"})
}
