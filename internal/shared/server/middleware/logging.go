package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"glowyze-backend/internal/shared/telemetry"
)

// Context keys handlers may set to enrich the request log line.
const (
	ScanIDKey   = "scanId"
	SkinTypeKey = "skinType"
	LocaleKey   = "locale"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		isGuest, _ := c.Get(isGuestKey)
		telemetry.Info("request.complete", map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       c.FullPath(),
			"status":      c.Writer.Status(),
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"user_id":     UserIDFromContext(c),
			"is_guest":    isGuest,
			"scan_id":     c.GetString(ScanIDKey),
			"skin_type":   c.GetString(SkinTypeKey),
			"locale":      c.GetString(LocaleKey),
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		})
	}
}
