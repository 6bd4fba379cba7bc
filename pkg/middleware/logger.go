package middleware

import (
	"net/http"
	"time"

	"github.com/justinas/alice"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

// RequestLogger logs every request except health checks.
func RequestLogger(log zerolog.Logger) func(h http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		chain := alice.New(
			hlog.NewHandler(log),
			hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
				hlog.FromRequest(r).Info().
					Str("method", r.Method).
					Stringer("url", r.URL).
					Int("status", status).
					Int("size", size).
					Dur("duration", duration).
					Msg("REQ")
			}),
			hlog.RemoteAddrHandler("ip"),
			hlog.RefererHandler("referer"),
			hlog.RequestIDHandler("req_id", "X-Request-Id"),
		).Then(h)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/health" {
				h.ServeHTTP(w, r)
				return
			}
			chain.ServeHTTP(w, r)
		})
	}
}
