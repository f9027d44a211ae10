// Package handler implements the HTTP layer of the plann.er API.
// All handlers are methods on Server; they decode requests, call a service
// interface, and map domain errors to status codes. Methods are split into
// resource-specific files (trip.go, participant.go, etc.) but all share the
// same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/yuriTakamisawaRibeiro/planner/internal/domain"
	"github.com/yuriTakamisawaRibeiro/planner/internal/service"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, in service.CreateTripInput) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Confirm(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	WebURL(id uuid.UUID) string
}

// ParticipantServicer defines the business operations the participant
// handlers depend on.
type ParticipantServicer interface {
	Invite(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
	Confirm(ctx context.Context, id uuid.UUID) (domain.Participant, error)
	WebURL(tripID uuid.UUID) string
}

// ActivityServicer defines the business operations the activity handlers
// depend on.
type ActivityServicer interface {
	Create(ctx context.Context, tripID uuid.UUID, title string, occursAt time.Time) (domain.Activity, error)
	ListDays(ctx context.Context, tripID uuid.UUID) ([]domain.ActivityDay, error)
}

// LinkServicer defines the business operations the link handlers depend on.
type LinkServicer interface {
	Create(ctx context.Context, tripID uuid.UUID, title, url string) (domain.Link, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error)
}

// Server holds the service dependencies for all API endpoints.
// Methods live in resource-specific files but all operate on this struct.
type Server struct {
	trips        TripServicer
	participants ParticipantServicer
	activities   ActivityServicer
	links        LinkServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, participants ParticipantServicer, activities ActivityServicer, links LinkServicer) *Server {
	return &Server{
		trips:        trips,
		participants: participants,
		activities:   activities,
		links:        links,
	}
}
