package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	auth "gig-market/internal/authService"
	"gig-market/services/market/helpers"
	"gig-market/utils"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// AuthRequired validates the session token (cookie, or Authorization bearer
// header as a fallback) and stores the authenticated user id on the context.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			utils.JSONResponse(c, http.StatusUnauthorized, nil, "authentication required")
			c.Abort()
			return
		}

		userID, err := auth.ParseToken(tokenStr, secret)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, err, "invalid or expired session")
			c.Abort()
			return
		}

		c.Set(helpers.ContextUserID, userID)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(helpers.SessionCookie); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}
