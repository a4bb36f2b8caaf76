package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-movie-reviews/internal/identity"
	"github.com/sbilibin2017/gw-movie-reviews/internal/jwt"
	"github.com/sbilibin2017/gw-movie-reviews/internal/logger"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// IdentityMiddleware returns a middleware that resolves the bearer token of
// the request into an identity. Requests without a valid token are passed on
// anonymously; operations that need an identity reject them later.
func IdentityMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				if !errors.Is(err, jwt.ErrMissingAuthHeader) {
					logger.FromContext(ctx).Warnw("ignoring authorization header", "err", err)
				}
				next.ServeHTTP(w, r)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.FromContext(ctx).Warnw("ignoring bearer token", "err", err)
				next.ServeHTTP(w, r)
				return
			}

			ctx = identity.WithIdentity(ctx, identity.Identity{UserID: claims.UserID})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
