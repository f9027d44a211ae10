package domain

import (
	"time"

	"github.com/google/uuid"
)

// Participant is a person associated with a Trip, either its owner or an
// invitee. The owner is created together with the trip and starts confirmed;
// invitees start unconfirmed with an empty name until they accept.
//
// Confirmation is one-way: Unconfirmed → Confirmed, never back. The
// (TripID, Email) pair is unique per trip, backed by a unique index.
type Participant struct {
	ID          uuid.UUID `json:"id"`
	TripID      uuid.UUID `json:"trip_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	IsOwner     bool      `json:"is_owner"`
	IsConfirmed bool      `json:"is_confirmed"`
	CreatedAt   time.Time `json:"created_at"`
}
