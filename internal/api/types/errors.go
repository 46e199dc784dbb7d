package types

import (
	"errors"
	"net/http"

	appErr "github.com/portfolio-studio/showcase/pkg/errors"
)

// FromAppError maps err to an HTTP status and the body sent to the client.
// Internal failures are reported with a generic message; the cause stays in the logs.
func FromAppError(err error) (int, ErrorResponse) {
	var status int
	switch appErr.CodeOf(err) {
	case appErr.CodeInvalid:
		status = http.StatusBadRequest
	case appErr.CodeNotFound:
		status = http.StatusNotFound
	case appErr.CodeUnavailable:
		status = http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}
	}

	msg := http.StatusText(status)
	var ae *appErr.AppError
	if errors.As(err, &ae) && ae.Message != "" {
		msg = ae.Message
	}
	return status, ErrorResponse{Error: msg}
}
