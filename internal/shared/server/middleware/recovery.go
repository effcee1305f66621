package middleware

import (
	"fmt"
	"io"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"glowyze-backend/internal/shared/server/respond"
	"glowyze-backend/internal/shared/telemetry"
)

// Recovery turns a handler panic into the 500 error envelope. gin's own
// writer is discarded; the stack goes to telemetry with the request id.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, rec any) {
		telemetry.Error("http.panic", map[string]any{
			"request_id": RequestIDFromContext(c),
			"user_id":    UserIDFromContext(c),
			"route":      c.FullPath(),
			"error":      fmt.Sprint(rec),
			"stack":      string(debug.Stack()),
		})
		respond.Error(c, http.StatusInternalServerError, "internal", "unexpected server error", nil)
	})
}
