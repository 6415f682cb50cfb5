package middleware

import (
	"context"
	"net/http"
	"strings"

	"pet-profiler/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// UserIDHeader identifica al usuario de la app (no hay auth más allá de esto).
const UserIDHeader = "X-User-ID"

// AuthContext setea claims si viene X-User-ID. Si no viene, el request sigue
// igual; los handlers deciden el 401.
func AuthContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uid := strings.TrimSpace(r.Header.Get(UserIDHeader))
			if uid == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithClaims(r.Context(), auth.Claims{UserID: uid})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithClaims es útil en tests de handlers.
func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}
