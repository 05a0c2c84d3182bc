package domain

import "errors"

// Sentinel errors for the domain layer. Each gateway collapses every failure
// into exactly one of these, so callers can only tell which operation failed.
var (
	// ErrAuthFailed indicates the password exchange failed: wrong password,
	// unreachable backend or an unusable response.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrFetchFailed indicates the order list could not be retrieved.
	ErrFetchFailed = errors.New("order retrieval failed")

	// ErrTooManyAttempts indicates a login was refused by the rate limiter
	// before reaching the backend.
	ErrTooManyAttempts = errors.New("too many login attempts")
)
