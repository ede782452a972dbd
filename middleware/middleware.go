package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/ManasaYK17/MindPulse-AI/services"
	"github.com/ManasaYK17/MindPulse-AI/utils"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the cookie carrying the auth session token.
const SessionCookie = "mp_session"

// Logger is a Gin middleware for logging HTTP requests and responses.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		c.Next()
		latency := time.Since(startTime)

		errorsStr := c.Errors.ByType(gin.ErrorTypePrivate).String()
		if errorsStr == "" {
			errorsStr = "None"
		}
		c.Writer.Header().Set("X-Response-Time", latency.String())

		log.Printf("[GIN] %s | %3d | %13v | %15s | %-7s %s\n      Errors: %s",
			startTime.Format("2006/01/02 - 15:04:05"),
			c.Writer.Status(),
			latency,
			c.ClientIP(),
			c.Request.Method,
			c.Request.RequestURI,
			errorsStr,
		)
	}
}

// sessionToken extracts the auth token from the cookie or, as a fallback,
// from a Bearer Authorization header.
func sessionToken(c *gin.Context) string {
	if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
		return token
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// RequireAuth resolves the session token to a user and aborts with 401 when
// no valid session exists. On success the user's id and admin flag are set
// on the request context.
func RequireAuth(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := auth.Resolve(c.Request.Context(), sessionToken(c))
		if err != nil {
			utils.SendJSONError(c, http.StatusInternalServerError, "Could not verify session.", err)
			return
		}
		if user == nil {
			utils.SendJSONError(c, http.StatusUnauthorized, "Login required.", nil)
			return
		}
		c.Set("userID", user.ID)
		c.Set("isAdmin", user.IsAdmin)
		c.Next()
	}
}

// RequireAdmin aborts with 403 unless RequireAuth marked the user an admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isAdmin, ok := c.Get("isAdmin"); !ok || isAdmin != true {
			utils.SendJSONError(c, http.StatusForbidden, "Admin access required.", nil)
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user's id set by RequireAuth.
func UserID(c *gin.Context) uint {
	v, _ := c.Get("userID")
	id, _ := v.(uint)
	return id
}
