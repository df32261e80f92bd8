// internal/api/middleware.go
package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"career-advisor/internal/common/auth"

	"github.com/go-chi/chi/v5/middleware"
)

type contextKey string

const sessionContextKey contextKey = "session"

// SessionFrom returns the verified session placed by AuthMiddleware, or nil.
func SessionFrom(ctx context.Context) *auth.Session {
	session, _ := ctx.Value(sessionContextKey).(*auth.Session)
	return session
}

// requestRecorder is the slice of the observability layer the transport
// needs: final status and wall time per request.
type requestRecorder interface {
	RecordRequest(ctx context.Context, status string)
	RecordRequestDuration(ctx context.Context, duration time.Duration, status string)
}

// RequestMetrics records the status and duration of every advice request
// through the otel meter. It wraps AuthMiddleware so rejected credentials
// are counted too.
func RequestMetrics(rec requestRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := strconv.Itoa(ww.Status())
			rec.RecordRequest(r.Context(), status)
			rec.RecordRequestDuration(r.Context(), time.Since(start), status)
		})
	}
}

// AuthMiddleware verifies the bearer token before anything else runs. A
// missing or rejected credential ends the request here; no pipeline stage
// executes for unauthenticated callers.
func AuthMiddleware(verifier auth.Verifier, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				respondError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if token == "" {
				respondError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			session, err := verifier.Verify(r.Context(), token)
			if err != nil {
				log.Warn("session verification failed", map[string]interface{}{
					"path":  r.URL.Path,
					"error": err.Error(),
				})
				respondError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
