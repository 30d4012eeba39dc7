package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrValidation         = fmt.Errorf("invalid input")
	ErrUserAlreadyExists  = fmt.Errorf("username already taken")
	ErrUserNotFound       = fmt.Errorf("user not found")
	ErrMessageNotFound    = fmt.Errorf("message not found")
	ErrInvalidCredentials = fmt.Errorf("invalid username/password")
	ErrInvalidToken       = fmt.Errorf("invalid or expired token")
	ErrForbidden          = fmt.Errorf("operation not allowed")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
)

// Is forwards to the standard library so callers importing this package do
// not need a second errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// MapToHTTPStatus translates a service error into the status code exposed at
// the REST boundary. Unknown errors are reported as 500 without leaking their
// message to the caller.
func MapToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUserAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrMessageNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the caller-facing description for an error. Internal
// failures are collapsed to a generic message.
func PublicMessage(err error) string {
	for _, sentinel := range []error{
		ErrValidation, ErrUserAlreadyExists, ErrUserNotFound, ErrMessageNotFound,
		ErrInvalidCredentials, ErrInvalidToken, ErrForbidden,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "internal server error"
}
