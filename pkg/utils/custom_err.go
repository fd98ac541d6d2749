package utils

import "errors"

var (
	ErrInvalidTripRequest = errors.New("invalid trip request")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")

	// Generation pipeline errors. Both are handled inside the planner
	// service by switching to the fallback generator; they never reach an
	// API response.
	ErrModelTransport = errors.New("generation model unreachable")
	ErrModelParse     = errors.New("generation model returned malformed output")

	ErrTripNotFound       = errors.New("trip not found")
	ErrShareTokenInvalid  = errors.New("share token invalid or expired")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrResetTokenInvalid  = errors.New("reset token invalid or expired")
	ErrDatabaseError      = errors.New("database error")
)
