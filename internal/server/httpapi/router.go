package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/radblock/gifgate/internal/logging"
	"github.com/radblock/gifgate/internal/server/config"
)

// NewRouter wires the endpoints. Admin routes sit behind the bearer
// token check.
func NewRouter(h *Handler, logger logging.Logger, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))

	r.POST("/submit", h.Submit)
	r.POST("/verify", h.Verify)
	r.GET("/healthz", h.Health)

	admin := r.Group("/admin", adminAuth([]byte(cfg.AdminSecret)))
	admin.POST("/ban", h.Ban)
	admin.POST("/reset", h.Reset)

	return r
}
