package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

type contextKey string

// CallerKey holds the authenticated username in the request context.
const CallerKey contextKey = "caller"

// CallerFromContext extracts the identity resolved by Middleware.
func CallerFromContext(ctx context.Context) (string, bool) {
	caller, ok := ctx.Value(CallerKey).(string)
	return caller, ok
}

// Middleware resolves the bearer token on every protected route. A missing,
// malformed or signature-invalid token is rejected with 401 before any
// downstream handler (and therefore any store access) runs. On success the
// caller's username is bound to the request context, replacing any notion of
// ambient session state.
func Middleware(log *slog.Logger, codec TokenCodec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Warn("missing authorization header", "path", r.URL.Path)
				unauthorized(w, "authorization token is missing")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				log.Warn("malformed authorization header", "path", r.URL.Path)
				unauthorized(w, "invalid authorization header format")
				return
			}

			claims, err := codec.Verify(parts[1])
			if err != nil {
				log.Warn("token rejected", "path", r.URL.Path, "error", err)
				unauthorized(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), CallerKey, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":   http.StatusText(http.StatusUnauthorized),
		"message": message,
	})
}
