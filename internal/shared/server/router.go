package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"glowyze-backend/internal/advice"
	googleauth "glowyze-backend/internal/auth"
	"glowyze-backend/internal/profiles"
	"glowyze-backend/internal/scans"
	"glowyze-backend/internal/shared/config"
	"glowyze-backend/internal/shared/metrics"
	"glowyze-backend/internal/shared/server/middleware"
	"glowyze-backend/internal/shared/server/respond"
	"glowyze-backend/internal/users"
)

const (
	rateGroupRead  = "READ"
	rateGroupWrite = "WRITE"
)

// RouterDeps are the handlers mounted under /api/v1. Nil handlers are skipped.
type RouterDeps struct {
	Config         config.Config
	UserHandler    *users.Handler
	ProfileHandler *profiles.Handler
	ScanHandler    *scans.Handler
	AdviceHandler  *advice.Handler
	GoogleAuth     *googleauth.GoogleService
	RateLimiter    *middleware.RateLimiter
	Ready          func() error
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		metrics.Middleware(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	limiter := deps.RateLimiter
	if limiter == nil {
		limiter = middleware.NewRateLimiter(nil)
	}
	rateLimit := middleware.RateLimit(middleware.RateLimitConfig{
		DefaultGroup: rateGroupRead,
		GroupFor:     rateGroupFor,
		Limiter:      limiter,
		Rules:        rateRules(deps.Config),
	})

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, gin.H{"ok": true})
	})
	api.GET("/ready", func(c *gin.Context) {
		if deps.Ready != nil {
			if err := deps.Ready(); err != nil {
				respond.Error(c, http.StatusServiceUnavailable, "not_ready", "dependencies unavailable", nil)
				return
			}
		}
		respond.OK(c, gin.H{"ok": true})
	})

	public := api.Group("")
	public.Use(rateLimit)
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(public)
	}
	if deps.AdviceHandler != nil {
		deps.AdviceHandler.RegisterPublicRoutes(public)
	}

	protected := api.Group("")
	protected.Use(middleware.Auth(), rateLimit)
	if deps.UserHandler != nil {
		deps.UserHandler.RegisterRoutes(protected)
	}
	if deps.ProfileHandler != nil {
		deps.ProfileHandler.RegisterRoutes(protected)
	}
	if deps.ScanHandler != nil {
		deps.ScanHandler.RegisterRoutes(protected)
	}
	if deps.AdviceHandler != nil {
		deps.AdviceHandler.RegisterRoutes(protected)
	}

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "route not found", nil)
	})

	return r
}

// rateGroupFor puts mutations and the preview computation in the write
// bucket. Everything else shares the read bucket.
func rateGroupFor(c *gin.Context) string {
	switch c.Request.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return rateGroupRead
	default:
		return rateGroupWrite
	}
}

func rateRules(cfg config.Config) map[string]middleware.RateLimitRule {
	rps := cfg.RateLimitRPS
	if rps <= 0 {
		rps = 5
	}
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = 20
	}
	writeBurst := burst / 2
	if writeBurst < 1 {
		writeBurst = 1
	}
	return map[string]middleware.RateLimitRule{
		rateGroupRead:  {Rate: rps, Burst: burst},
		rateGroupWrite: {Rate: rps / 2, Burst: writeBurst},
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
