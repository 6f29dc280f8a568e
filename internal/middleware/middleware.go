package middleware

import (
	appcontext "github.com/pavelmamonov20/furnitura/internal/app_context"
	ratelimiter "github.com/pavelmamonov20/furnitura/internal/rate_limiter"
)

type Middleware struct {
	rateLimiter *ratelimiter.FixedWindowRateLimiter
	app         *appcontext.Application
}

func NewMiddleware(app *appcontext.Application,
	rateLimiter *ratelimiter.FixedWindowRateLimiter,
) *Middleware {
	return &Middleware{app: app, rateLimiter: rateLimiter}
}
