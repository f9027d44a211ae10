package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/yuriTakamisawaRibeiro/planner/internal/domain"
	"github.com/yuriTakamisawaRibeiro/planner/internal/mail"
	"github.com/yuriTakamisawaRibeiro/planner/internal/repo"
)

// ParticipantService implements business logic for Participant operations.
// It holds the trip repo as well because inviting requires verifying the
// parent trip exists and composing the invite mail from its details.
type ParticipantService struct {
	trips        repo.TripRepo
	participants repo.ParticipantRepo
	mailer       Mailer
	apiBaseURL   string
	webBaseURL   string
}

// NewParticipantService constructs a ParticipantService backed by the
// provided repos and mailer.
func NewParticipantService(trips repo.TripRepo, participants repo.ParticipantRepo, mailer Mailer, apiBaseURL, webBaseURL string) *ParticipantService {
	return &ParticipantService{
		trips:        trips,
		participants: participants,
		mailer:       mailer,
		apiBaseURL:   apiBaseURL,
		webBaseURL:   webBaseURL,
	}
}

// Invite adds an unconfirmed participant to an existing trip and sends them a
// confirmation e-mail.
//
// Returns domain.ErrNotFound when the trip does not exist and
// domain.ErrAlreadyInvited when the e-mail is already registered on the trip.
// The existence pre-check gives a friendly error on the common path, but the
// real dedup guarantee is the unique index behind ParticipantRepo.Create —
// two racing invites for the same pair cannot both succeed.
func (s *ParticipantService) Invite(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error) {
	if err := validateEmail(email); err != nil {
		return domain.Participant{}, err
	}

	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: %w", err)
	}

	_, err = s.participants.FindByTripAndEmail(ctx, tripID, email)
	switch {
	case err == nil:
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: %w", domain.ErrAlreadyInvited)
	case !errors.Is(err, domain.ErrNotFound):
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: %w", err)
	}

	created, err := s.participants.Create(ctx, domain.Participant{
		TripID: tripID,
		Email:  email,
	})
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: %w", err)
	}

	confirmURL := fmt.Sprintf("%s/participants/%s/confirm", s.apiBaseURL, created.ID)
	s.send(ctx, func() (mail.Message, error) {
		return mail.ParticipantInvite(trip, created, confirmURL)
	})

	return created, nil
}

// GetByID returns a single participant by ID.
// Returns domain.ErrNotFound if no participant with that ID exists.
func (s *ParticipantService) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	result, err := s.participants.GetByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.GetByID: %w", err)
	}
	return result, nil
}

// ListByTrip returns all participants of a trip ordered by creation.
// Returns domain.ErrNotFound when the trip does not exist.
func (s *ParticipantService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.ParticipantService.ListByTrip: %w", err)
	}
	participants, err := s.participants.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ParticipantService.ListByTrip: %w", err)
	}
	if participants == nil {
		return []domain.Participant{}, nil
	}
	return participants, nil
}

// Confirm flips the participant to confirmed. Confirmed is terminal: there is
// no reverse transition, and confirming an already-confirmed participant is a
// no-op, not an error.
func (s *ParticipantService) Confirm(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	p, err := s.participants.GetByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Confirm: %w", err)
	}
	if p.IsConfirmed {
		return p, nil
	}

	if err := s.participants.SetConfirmed(ctx, id); err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Confirm: %w", err)
	}
	p.IsConfirmed = true
	return p, nil
}

// WebURL returns the web app page for the participant's trip, used by the
// confirmation endpoint's redirect.
func (s *ParticipantService) WebURL(tripID uuid.UUID) string {
	return fmt.Sprintf("%s/trips/%s", s.webBaseURL, tripID)
}

// send mirrors TripService.send: best-effort delivery after the mutation.
func (s *ParticipantService) send(ctx context.Context, compose func() (mail.Message, error)) {
	msg, err := compose()
	if err != nil {
		slog.WarnContext(ctx, "compose mail", "error", err)
		return
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		slog.WarnContext(ctx, "send mail", "to", msg.To.Email, "subject", msg.Subject, "error", err)
	}
}
