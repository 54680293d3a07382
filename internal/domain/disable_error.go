package domain

import (
	"errors"
	"net/http"
)

// DisableErrorPrefix starts every DisableError message.
const DisableErrorPrefix = "Failed to disable account: "

// DisableError is a non-2xx response from the disable endpoint.
// StatusCode is left for the job framework to classify; this package
// never retries on its own.
type DisableError struct {
	Message    string `json:"error"`
	StatusCode int    `json:"statusCode"`
}

// NewDisableError builds a DisableError with the standard prefix.
func NewDisableError(statusCode int, detail string) *DisableError {
	return &DisableError{
		Message:    DisableErrorPrefix + detail,
		StatusCode: statusCode,
	}
}

// Error implements error.
func (e *DisableError) Error() string {
	return e.Message
}

// IsRetryable reports whether the status code usually indicates a transient
// failure (429 or 5xx).
func (e *DisableError) IsRetryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// AsDisableError unwraps err into a *DisableError if it is one.
func AsDisableError(err error) (*DisableError, bool) {
	var de *DisableError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
