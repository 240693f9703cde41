package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware rejects requests once the shared token bucket is empty.
// A nil limiter disables throttling.
func RateLimitMiddleware(limiter *rate.Limiter, rs responder) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter != nil && !limiter.Allow() {
				rateLimitedTotal.Inc()
				rs.writeError(w, errors.SetCustomError(constant.ErrTooManyRequests))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// NewLimiter builds the request limiter; rps <= 0 means unlimited.
func NewLimiter(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}
