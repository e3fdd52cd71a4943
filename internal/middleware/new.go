package middleware

import (
	"arogyaai/pkg/log"
	"arogyaai/pkg/token"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l       log.Logger
	tokens  *token.Manager
	limiter *rateLimiter
}

// New creates the middleware set. requestsPerMin bounds the rate-limited
// routes (auth endpoints); zero disables limiting.
func New(l log.Logger, tokens *token.Manager, requestsPerMin int) Middleware {
	var limiter *rateLimiter
	if requestsPerMin > 0 {
		limiter = newRateLimiter(requestsPerMin)
	}
	return Middleware{
		l:       l,
		tokens:  tokens,
		limiter: limiter,
	}
}
