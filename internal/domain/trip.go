// Package domain contains the core data types for the plann.er API.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, mail, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a planned journey with a destination and a date window.
// A trip is the top-level aggregate; participants, activities, and links
// belong to a trip.
//
// StartsAt and EndsAt are full timestamps, not calendar dates — the window
// check in the service layer compares them against time.Now at creation.
type Trip struct {
	ID          uuid.UUID `json:"id"`
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	IsConfirmed bool      `json:"is_confirmed"`
	CreatedAt   time.Time `json:"created_at"`
}
