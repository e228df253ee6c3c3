package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/tradeport/pkg/auth"
	"github.com/shashiranjanraj/tradeport/pkg/response"
)

type claimsKeyType struct{}

var claimsKey claimsKeyType

// ClaimsFromCtx returns the authenticated claims stored by Auth, or nil when
// the request did not pass through the auth middleware.
func ClaimsFromCtx(ctx context.Context) *auth.Claims {
	c, _ := ctx.Value(claimsKey).(*auth.Claims)
	return c
}

// Auth validates the Bearer token and stores the claims in the request
// context for handlers to read via ClaimsFromCtx.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" || token == r.Header.Get("Authorization") {
			response.Error(w, http.StatusUnauthorized, "Missing bearer token")
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Error(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireActor returns a middleware that rejects authenticated requests whose
// token was not issued for the given actor type. Wire it after Auth:
//
//	g.Use(middleware.Auth, middleware.RequireActor(auth.ActorAdmin))
func RequireActor(actorType string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := ClaimsFromCtx(r.Context())
			if claims == nil {
				response.Error(w, http.StatusUnauthorized, "Unauthenticated")
				return
			}
			if claims.Type != actorType {
				response.Error(w, http.StatusForbidden, "Insufficient privileges")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
