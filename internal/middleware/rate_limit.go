package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pavelmamonov20/furnitura/internal/util"
)

func (m Middleware) RateLimiterMiddleware(ctx *gin.Context) {
	if m.app.Config.RateLimiter.Enabled {
		allow, retryAfter := m.rateLimiter.Allow(ctx.ClientIP())
		if !allow {
			ctx.Header("Retry-After", fmt.Sprintf("%.0f", retryAfter.Seconds()))
			util.ResponseFailed(ctx, http.StatusTooManyRequests, "Rate limit exceeded, retry later", nil, nil)
			return
		}
	}

	ctx.Next()
}
