package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/radblock/gifgate/internal/logging"
	"github.com/radblock/gifgate/internal/server/auth"
)

// requestLogger tags every request with a uuid and logs its outcome.
func requestLogger(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqID := uuid.NewString()
		c.Set("request_id", reqID)

		c.Next()

		logger.Info(c.Request.Context(), "request handled",
			"request_id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

// adminAuth requires a bearer token signed with the admin secret and
// carrying the admin role.
func adminAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			fail(c, http.StatusUnauthorized, "unauthorized.")
			c.Abort()
			return
		}

		role, err := auth.GetRoleFromToken(token, secret)
		if err != nil || role != auth.RoleAdmin {
			fail(c, http.StatusUnauthorized, "unauthorized.")
			c.Abort()
			return
		}

		c.Next()
	}
}
