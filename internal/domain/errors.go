package domain

import "errors"

// Domain errors represent invalid input or configuration for a disable job.
// They can be checked with errors.Is.
var (
	// ErrMissingAccountID is returned when a request has no account id.
	ErrMissingAccountID = errors.New("idn-disable: account id is required")

	// ErrMissingAddress is returned when neither the job parameters nor the
	// environment provide a base URL.
	ErrMissingAddress = errors.New("idn-disable: no address configured")

	// ErrInvalidAddress is returned when the base URL is not an absolute http(s) URL.
	ErrInvalidAddress = errors.New("idn-disable: invalid address")

	// ErrInvalidTransition is returned when a job state change is not allowed.
	ErrInvalidTransition = errors.New("idn-disable: invalid state transition")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("idn-disable: invalid configuration")
)
