package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// TokenVerifier validates a session token. *SessionManager implements it.
type TokenVerifier interface {
	Verify(token string) (Identity, error)
}

// Authenticate attaches the caller's Identity to the request context when a
// valid session cookie or Bearer token is present. Anonymous and invalid
// requests pass through unchanged; handlers decide whether that is allowed.
func Authenticate(v TokenVerifier, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r, cookieName)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			id, err := v.Verify(token)
			if err != nil {
				slog.Debug("session token rejected", "error", err, "path", r.URL.Path)
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

// RequireAuth rejects requests without an Identity with 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r.Context()); !ok {
			WriteUnauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// DevUserID は開発用のダミー userID（AUTH_REQUIRED=false 時に使用）
var DevUserID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// DevRole is the role DevAuth assigns.
const DevRole = "admin"

// DevAuth は開発用ミドルウェア。ダミーの管理者を context にセットする
func DevAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithIdentity(r.Context(), Identity{UserID: DevUserID, Role: DevRole})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WriteUnauthorized writes the 401 body shared by the middleware and handlers.
func WriteUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}

func tokenFromRequest(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	if h := r.Header.Get("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	return ""
}
