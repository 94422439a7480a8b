package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"golang.org/x/time/rate"

	"github.com/jboard/orchestrator/internal/http/response"
)

// RateLimit ограничивает частоту запросов общим для маршрута limiter.
func RateLimit(log *slog.Logger, limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.Warn("too many requests",
					slog.String("request_id", middleware.GetReqID(r.Context())),
					slog.String("path", r.URL.Path),
				)
				response.WriteStatus(w, r, http.StatusTooManyRequests, response.MsgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
