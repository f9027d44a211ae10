package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// trip or participant does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. destination too short, malformed email).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrInvalidDateRange is returned when a trip or activity date violates the
// ordering rules: trips must start in the future and end no earlier than they
// start; activities must fall inside the trip window.
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrInvalidDateRange = errors.New("invalid date range")

// ErrAlreadyInvited is returned when an invite targets a (trip, email) pair
// that already has a participant. Callers should treat it as "already
// handled", not a transient failure. Handlers should map this to HTTP 409.
var ErrAlreadyInvited = errors.New("email already invited to this trip")
