package service

import (
	"fmt"
	netmail "net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/yuriTakamisawaRibeiro/planner/internal/domain"
)

// Validation rules shared by the services. All functions here are pure:
// deterministic given their inputs, no side effects. They run before any
// mutation, so a failed rule means nothing was persisted.

// minDestinationLen matches the minimum the web client enforces.
const minDestinationLen = 4

// validateDestination rejects destinations shorter than four characters
// after trimming whitespace.
func validateDestination(destination string) error {
	if len(strings.TrimSpace(destination)) < minDestinationLen {
		return fmt.Errorf("%w: destination must be at least %d characters", domain.ErrValidation, minDestinationLen)
	}
	return nil
}

// validateTripWindow enforces the trip date ordering rules:
// starts_at must be strictly after now, and ends_at must not be before starts_at.
func validateTripWindow(startsAt, endsAt, now time.Time) error {
	if !startsAt.After(now) {
		return fmt.Errorf("%w: starts_at must be in the future", domain.ErrInvalidDateRange)
	}
	if endsAt.Before(startsAt) {
		return fmt.Errorf("%w: ends_at must not be before starts_at", domain.ErrInvalidDateRange)
	}
	return nil
}

// validateEmail rejects anything that is not a plain, syntactically valid
// e-mail address. Display names ("Alice <alice@x.com>") are rejected — the
// name travels in its own field.
func validateEmail(email string) error {
	addr, err := netmail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: invalid email address %q", domain.ErrValidation, email)
	}
	return nil
}

// validateURL rejects anything that does not parse as an absolute http(s) URL.
func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%w: invalid url %q", domain.ErrValidation, raw)
	}
	return nil
}
