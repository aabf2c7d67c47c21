package middleware

import (
	pkgLog "tailortalk/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers.
type Middleware struct {
	l               pkgLog.Logger
	rateLimitPerMin int
}

// New creates the middleware bundle.
func New(l pkgLog.Logger, rateLimitPerMin int) Middleware {
	return Middleware{
		l:               l,
		rateLimitPerMin: rateLimitPerMin,
	}
}
