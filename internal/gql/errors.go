package gql

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-movie-reviews/internal/logger"
	"github.com/sbilibin2017/gw-movie-reviews/internal/services"
)

// Error codes reported in the extensions of a GraphQL error.
const (
	CodeUnauthenticated     = "UNAUTHENTICATED"
	CodeForbidden           = "FORBIDDEN"
	CodeNotFound            = "NOT_FOUND"
	CodeBadUserInput        = "BAD_USER_INPUT"
	CodeDuplicateEmail      = "DUPLICATE_EMAIL"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeStorageFailure      = "STORAGE_FAILURE"
	CodeInternalServerError = "INTERNAL_SERVER_ERROR"
)

var errorCodes = []struct {
	kind error
	code string
}{
	{services.ErrAuthenticationRequired, CodeUnauthenticated},
	{services.ErrAuthorizationDenied, CodeForbidden},
	{services.ErrNotFound, CodeNotFound},
	{services.ErrValidationFailed, CodeBadUserInput},
	{services.ErrDuplicateEmail, CodeDuplicateEmail},
	{services.ErrInvalidCredentials, CodeInvalidCredentials},
	{services.ErrStorageFailure, CodeStorageFailure},
}

// gqlError is a resolver error carrying a machine readable code.
type gqlError struct {
	code    string
	message string
}

func (e *gqlError) Error() string {
	return e.message
}

// Extensions is picked up by the executor and rendered under "extensions".
func (e *gqlError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

// toGQLError translates a service error into a client facing error. The
// cause of the error is logged but never exposed.
func toGQLError(ctx context.Context, err error) error {
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		for _, c := range errorCodes {
			if errors.Is(svcErr, c.kind) {
				return &gqlError{code: c.code, message: svcErr.Message}
			}
		}
	}

	logger.FromContext(ctx).Errorw("unclassified resolver error", "error", err)
	return &gqlError{code: CodeInternalServerError, message: "Internal server error."}
}
