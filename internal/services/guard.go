package services

import (
	"context"

	"github.com/sbilibin2017/gw-movie-reviews/internal/identity"
)

// requireIdentity returns the caller identity or an authentication failure
// mentioning action, e.g. "create a movie".
func requireIdentity(ctx context.Context, action string) (identity.Identity, error) {
	id, ok := identity.FromContext(ctx)
	if !ok {
		return identity.Identity{}, newError(ErrAuthenticationRequired, "You must be authenticated to "+action+".")
	}
	return id, nil
}

// authorize allows the caller only on resources it owns.
func authorize(id identity.Identity, ownerID int64, action string) error {
	if id.UserID != ownerID {
		return newError(ErrAuthorizationDenied, "You are not authorized to "+action+".")
	}
	return nil
}
