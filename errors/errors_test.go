package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapToHTTPStatus(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		err    error
		status int
	}{
		{ErrValidation, http.StatusBadRequest},
		{ErrUserAlreadyExists, http.StatusConflict},
		{ErrUserNotFound, http.StatusNotFound},
		{ErrMessageNotFound, http.StatusNotFound},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrInvalidToken, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{stderrors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		req.Equal(tt.status, MapToHTTPStatus(tt.err))
	}
}

func TestWrappedErrorsKeepTheirKind(t *testing.T) {
	req := require.New(t)

	wrapped := fmt.Errorf("%w: body is required", ErrValidation)
	req.Equal(http.StatusBadRequest, MapToHTTPStatus(wrapped))
	req.Equal(ErrValidation.Error(), PublicMessage(wrapped))
}

func TestPublicMessageHidesInternals(t *testing.T) {
	req := require.New(t)

	internal := stderrors.New("dial tcp 10.0.0.5: connection refused")
	req.Equal("internal server error", PublicMessage(internal))
}
