package middleware

import (
	"item-checklist/pkg/log"
)

// Config holds middleware settings.
type Config struct {
	RateLimitPerMin int // 0 disables rate limiting
	RateLimitBurst  int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin, cfg.RateLimitBurst)
	}
	return mw
}
