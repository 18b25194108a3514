package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/taskdeck/taskdeck-go/internal/crypto"
)

// SessionCookie is the cookie that carries the session token.
const SessionCookie = "token"

type contextKey string

const userIDKey contextKey = "userID"

// JWTAuth returns middleware that resolves the caller's identity before a
// protected handler runs. The token is read from the session cookie first,
// then from the Authorization header. Requests without any token are
// rejected without touching the token manager, and every validation
// failure maps to the same generic 401 body.
func JWTAuth(tokens *crypto.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				writeJSONError(w, http.StatusUnauthorized, "access denied. no token provided")
				return
			}

			userID, err := tokens.Validate(token)
			if err != nil {
				// The discriminated reason stays in the server log only.
				slog.Info("rejected token", "path", r.URL.Path, "reason", err)
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken prefers the session cookie and falls back to the
// Authorization header. A case-insensitive "Bearer " prefix is stripped;
// a bare header value is used as-is.
func extractToken(r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}

	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}

// UserIDFromContext extracts the authenticated user ID from the request
// context.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
