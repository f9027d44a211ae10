// Package service contains the business logic for the plann.er API.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/yuriTakamisawaRibeiro/planner/internal/domain"
	"github.com/yuriTakamisawaRibeiro/planner/internal/mail"
	"github.com/yuriTakamisawaRibeiro/planner/internal/repo"
)

// Mailer is the slice of the mail layer the services depend on.
// Declared here (in the consumer package) so tests can substitute a fake
// without touching SMTP.
type Mailer interface {
	Send(ctx context.Context, msg mail.Message) error
}

// CreateTripInput carries the fields needed to create a trip together with
// its initial participant set.
type CreateTripInput struct {
	Destination  string
	StartsAt     time.Time
	EndsAt       time.Time
	OwnerName    string
	OwnerEmail   string
	InviteEmails []string
}

// TripService implements business logic for Trip operations.
type TripService struct {
	trips        repo.TripRepo
	participants repo.ParticipantRepo
	mailer       Mailer
	apiBaseURL   string
	webBaseURL   string

	// now is stubbed in tests so the "starts in the future" rule is
	// deterministic.
	now func() time.Time
}

// NewTripService constructs a TripService backed by the provided repos and mailer.
// apiBaseURL is used to build confirmation links; webBaseURL is where the
// confirmation endpoint redirects the browser afterwards.
func NewTripService(trips repo.TripRepo, participants repo.ParticipantRepo, mailer Mailer, apiBaseURL, webBaseURL string) *TripService {
	return &TripService{
		trips:        trips,
		participants: participants,
		mailer:       mailer,
		apiBaseURL:   apiBaseURL,
		webBaseURL:   webBaseURL,
		now:          time.Now,
	}
}

// Create validates the input, builds the initial participant set, and persists
// the trip atomically — if any participant row fails, nothing is created.
//
// Invite e-mails are deduplicated against each other and against the owner's
// e-mail; an invite equal to the owner's address is silently dropped because
// the owner is already a participant. After the transaction commits, a
// confirmation e-mail is sent to the owner; a send failure is logged but does
// not fail the operation — the trip stays committed.
func (s *TripService) Create(ctx context.Context, in CreateTripInput) (domain.Trip, error) {
	if err := validateDestination(in.Destination); err != nil {
		return domain.Trip{}, err
	}
	if err := validateTripWindow(in.StartsAt, in.EndsAt, s.now()); err != nil {
		return domain.Trip{}, err
	}
	if err := validateEmail(in.OwnerEmail); err != nil {
		return domain.Trip{}, err
	}
	for _, email := range in.InviteEmails {
		if err := validateEmail(email); err != nil {
			return domain.Trip{}, err
		}
	}

	participants := []domain.Participant{{
		Name:        in.OwnerName,
		Email:       in.OwnerEmail,
		IsOwner:     true,
		IsConfirmed: true, // the owner authored the request; no handshake needed
	}}
	for _, email := range dedupeEmails(in.InviteEmails, in.OwnerEmail) {
		participants = append(participants, domain.Participant{Email: email})
	}

	trip := domain.Trip{
		Destination: in.Destination,
		StartsAt:    in.StartsAt,
		EndsAt:      in.EndsAt,
	}
	created, err := s.trips.CreateWithParticipants(ctx, trip, participants)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	owner := participants[0]
	confirmURL := fmt.Sprintf("%s/trips/%s/confirm", s.apiBaseURL, created.ID)
	s.send(ctx, func() (mail.Message, error) {
		return mail.TripConfirmation(created, owner, confirmURL)
	})

	return created, nil
}

// GetByID returns a single trip by ID.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	result, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// Update re-validates destination and date window, then persists the change.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateDestination(trip.Destination); err != nil {
		return domain.Trip{}, err
	}
	if err := validateTripWindow(trip.StartsAt, trip.EndsAt, s.now()); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Confirm marks the trip as confirmed and sends the invite e-mail to every
// non-owner participant. Confirming an already-confirmed trip is a no-op —
// in particular, no duplicate invite mails go out.
func (s *TripService) Confirm(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Confirm: %w", err)
	}
	if trip.IsConfirmed {
		return trip, nil
	}

	if err := s.trips.SetConfirmed(ctx, id); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Confirm: %w", err)
	}
	trip.IsConfirmed = true

	participants, err := s.participants.ListByTripID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Confirm: list participants: %w", err)
	}
	for _, p := range participants {
		if p.IsOwner {
			continue
		}
		confirmURL := fmt.Sprintf("%s/participants/%s/confirm", s.apiBaseURL, p.ID)
		s.send(ctx, func() (mail.Message, error) {
			return mail.ParticipantInvite(trip, p, confirmURL)
		})
	}

	return trip, nil
}

// WebURL returns the web app page for a trip, used by the confirmation
// endpoint's redirect.
func (s *TripService) WebURL(id uuid.UUID) string {
	return fmt.Sprintf("%s/trips/%s", s.webBaseURL, id)
}

// send composes and delivers a message best-effort. Mail runs after the
// domain mutation has committed, so failures are logged and swallowed — the
// record exists even when the recipient is never notified.
func (s *TripService) send(ctx context.Context, compose func() (mail.Message, error)) {
	msg, err := compose()
	if err != nil {
		slog.WarnContext(ctx, "compose mail", "error", err)
		return
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		slog.WarnContext(ctx, "send mail", "to", msg.To.Email, "subject", msg.Subject, "error", err)
	}
}

// dedupeEmails removes duplicates from emails, preserving order, and drops
// any entry equal to ownerEmail — the owner is already on the trip.
func dedupeEmails(emails []string, ownerEmail string) []string {
	seen := map[string]bool{ownerEmail: true}
	var out []string
	for _, e := range emails {
		if seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}
