package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/rentiva/rentiva-admin/internal/platform/httpx"
	"github.com/rentiva/rentiva-admin/internal/shared"
)

type principalContextKey struct{}

// ContextWithPrincipal stores the authenticated principal in context.
func ContextWithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, p)
}

// PrincipalFromContext extracts the authenticated principal from context.
func PrincipalFromContext(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalContextKey{}).(*Principal)
	return p
}

// Middleware guards protected routes with bearer-token verification
// followed by a live admin-role check.
type Middleware struct {
	Service *Service
	Tokens  *Tokens
	Logger  *slog.Logger
}

// RequireAdmin verifies the bearer token, re-fetches the principal by
// the decoded id, and rejects anything but an admin account.
func (m Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || raw == "" {
			httpx.Message(w, http.StatusUnauthorized, "Not authorized, no token")
			return
		}

		id, err := m.Tokens.Verify(raw)
		if err != nil {
			httpx.RespondError(w, err)
			return
		}

		principal, err := m.Service.Identify(r.Context(), id)
		if err != nil {
			if !errors.Is(err, shared.ErrForbidden) {
				m.log().Error("identify principal", slog.Any("error", err))
				httpx.Message(w, http.StatusInternalServerError, httpx.GenericServerMessage)
				return
			}
			httpx.RespondError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithPrincipal(r.Context(), principal)))
	})
}

func (m Middleware) log() *slog.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return slog.Default()
}
