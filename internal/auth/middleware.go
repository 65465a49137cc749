package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
)

type ctxKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}

// Middleware resolves the bearer token of a request into an Identity.
type Middleware struct {
	Tokens *TokenIssuer
}

func NewMiddleware(tokens *TokenIssuer) *Middleware {
	return &Middleware{Tokens: tokens}
}

// tokenFromRequest accepts the storefront's `token` header as well as a standard
// Authorization bearer.
func tokenFromRequest(r *http.Request) string {
	if tok := r.Header.Get("token"); tok != "" {
		return tok
	}
	authz := r.Header.Get("Authorization")
	if strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimPrefix(authz, "Bearer ")
	}
	return ""
}

func (m *Middleware) require(roles ...Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := tokenFromRequest(r)
			if raw == "" {
				unauthorized(w, "Not authorized, please login again")
				return
			}
			id, err := m.Tokens.Parse(raw)
			if err != nil {
				log.Printf("[auth] rejected token: %v", err)
				unauthorized(w, "Token is invalid")
				return
			}
			if !hasRole(id.Role, roles) {
				unauthorized(w, "Not authorized for this resource")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

func (m *Middleware) RequireUser(next http.Handler) http.Handler {
	return m.require(RoleUser)(next)
}

func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return m.require(RoleAdmin)(next)
}

func (m *Middleware) RequireAny(next http.Handler) http.Handler {
	return m.require(RoleUser, RoleAdmin)(next)
}

// Optional attaches an identity when a valid token is present and otherwise lets
// the request through as a guest.
func (m *Middleware) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if raw := tokenFromRequest(r); raw != "" {
			if id, err := m.Tokens.Parse(raw); err == nil {
				r = r.WithContext(WithIdentity(r.Context(), id))
			} else {
				log.Printf("[auth] optional token ignored: %v", err)
			}
		}
		next.ServeHTTP(w, r)
	})
}

func hasRole(role Role, allowed []Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}
