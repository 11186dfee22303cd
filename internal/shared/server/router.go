package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tailor-backend/internal/export"
	"tailor-backend/internal/session"
	"tailor-backend/internal/shared/config"
	"tailor-backend/internal/shared/metrics"
	"tailor-backend/internal/shared/server/middleware"
	"tailor-backend/internal/shared/server/respond"
	"tailor-backend/internal/tailoring"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Session(),
		middleware.RateLimit(rateLimits()),
	)

	gate := session.NewService(cfg.FreeTierLimit)
	usageHandler := session.NewHandler(gate)
	tailorHandler := tailoring.NewHandler(tailoring.NewService(cfg, gate))
	exportHandler := export.NewHandler()

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	tailorHandler.RegisterRoutes(api)
	exportHandler.RegisterRoutes(api)
	usageHandler.RegisterRoutes(api)
	if cfg.Env == "dev" {
		dev := api.Group("/dev")
		usageHandler.RegisterDevRoutes(dev)
	}

	return r
}

// rateLimits throttles burst abuse per session. The tailor endpoint carries
// an LLM call behind it, so its bucket is much smaller than the default.
func rateLimits() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"TAILOR":  {Rate: 0.2, Burst: 3},
			"DEFAULT": {Rate: 5, Burst: 20},
		},
		DefaultGroup: "DEFAULT",
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && strings.HasSuffix(c.Request.URL.Path, "/tailor") {
				return "TAILOR"
			}
			return "DEFAULT"
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
