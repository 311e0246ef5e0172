package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/jasongilchristp/xrm-by-json/internal/api/httpx"
	"github.com/jasongilchristp/xrm-by-json/internal/auth"
	"github.com/jasongilchristp/xrm-by-json/internal/models"
	"github.com/jasongilchristp/xrm-by-json/internal/session"
)

type ctxKey string

const (
	ctxUsernameKey  ctxKey = "username"
	ctxSessionIDKey ctxKey = "sid"
)

func Username(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxUsernameKey).(string)
	return v, ok
}

func SessionID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxSessionIDKey).(string)
	return v, ok
}

type AuthMiddleware struct {
	TM       *auth.TokenManager
	Sessions *session.Store
}

func NewAuthMiddleware(tm *auth.TokenManager, sessions *session.Store) *AuthMiddleware {
	return &AuthMiddleware{TM: tm, Sessions: sessions}
}

// Auth requires a bearer token whose signature is valid and whose jti is
// still present in the session store. Logout removes the jti, so revoked
// tokens fail here even before they expire.
func (m *AuthMiddleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ah := r.Header.Get("Authorization")
		if ah == "" || !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token", nil)
			return
		}
		token := strings.TrimSpace(ah[len("Bearer "):])

		claims, err := m.TM.Parse(token)
		if err != nil {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid session token", nil)
			return
		}
		username, ok := m.Sessions.Resolve(claims.ID)
		if !ok || username != claims.Username {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "session expired or revoked", nil)
			return
		}

		ctx := context.WithValue(r.Context(), ctxUsernameKey, username)
		ctx = context.WithValue(ctx, ctxSessionIDKey, claims.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin allows only the distinguished admin account. There is no
// role hierarchy beyond this single username.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, ok := Username(r.Context())
		if !ok || username != models.AdminUsername {
			httpx.WriteError(w, http.StatusForbidden, "forbidden", "admin only", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
