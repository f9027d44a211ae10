package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuriTakamisawaRibeiro/planner/internal/domain"
	"github.com/yuriTakamisawaRibeiro/planner/internal/mail"
	"github.com/yuriTakamisawaRibeiro/planner/internal/repo"
	"github.com/yuriTakamisawaRibeiro/planner/internal/service"
)

// mockTripRepo is a hand-written test double for repo.TripRepo.
// Each method is a function field — set only the ones your test needs.
type mockTripRepo struct {
	createWithParticipants func(ctx context.Context, trip domain.Trip, participants []domain.Participant) (domain.Trip, error)
	getByID                func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	update                 func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	setConfirmed           func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) CreateWithParticipants(ctx context.Context, trip domain.Trip, participants []domain.Participant) (domain.Trip, error) {
	return m.createWithParticipants(ctx, trip, participants)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) SetConfirmed(ctx context.Context, id uuid.UUID) error {
	return m.setConfirmed(ctx, id)
}

var _ repo.TripRepo = (*mockTripRepo)(nil)

// mockParticipantRepo is a hand-written test double for repo.ParticipantRepo.
type mockParticipantRepo struct {
	create             func(ctx context.Context, p domain.Participant) (domain.Participant, error)
	getByID            func(ctx context.Context, id uuid.UUID) (domain.Participant, error)
	findByTripAndEmail func(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error)
	listByTripID       func(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
	setConfirmed       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockParticipantRepo) Create(ctx context.Context, p domain.Participant) (domain.Participant, error) {
	return m.create(ctx, p)
}
func (m *mockParticipantRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	return m.getByID(ctx, id)
}
func (m *mockParticipantRepo) FindByTripAndEmail(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error) {
	return m.findByTripAndEmail(ctx, tripID, email)
}
func (m *mockParticipantRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockParticipantRepo) SetConfirmed(ctx context.Context, id uuid.UUID) error {
	return m.setConfirmed(ctx, id)
}

var _ repo.ParticipantRepo = (*mockParticipantRepo)(nil)

// mockMailer records every message it is asked to send. Set fail to make
// Send return an error.
type mockMailer struct {
	sent []mail.Message
	fail error
}

func (m *mockMailer) Send(_ context.Context, msg mail.Message) error {
	if m.fail != nil {
		return m.fail
	}
	m.sent = append(m.sent, msg)
	return nil
}

// ---- helpers ---------------------------------------------------------------

const (
	testAPIBaseURL = "http://localhost:3333"
	testWebBaseURL = "http://localhost:3000"
)

// validInput returns a CreateTripInput that passes every validation rule.
// Dates are relative to the wall clock because the "starts in the future"
// rule compares against time.Now.
func validInput() service.CreateTripInput {
	return service.CreateTripInput{
		Destination:  "Florianópolis",
		StartsAt:     time.Now().Add(24 * time.Hour),
		EndsAt:       time.Now().Add(10 * 24 * time.Hour),
		OwnerName:    "Alice",
		OwnerEmail:   "alice@example.com",
		InviteEmails: []string{"bob@example.com"},
	}
}

// echoTripRepo returns whatever it receives, stamping a fresh ID — enough for
// tests that only exercise validation and mail behavior.
func echoTripRepo() *mockTripRepo {
	return &mockTripRepo{
		createWithParticipants: func(_ context.Context, trip domain.Trip, _ []domain.Participant) (domain.Trip, error) {
			trip.ID = uuid.New()
			return trip, nil
		},
		update: func(_ context.Context, trip domain.Trip) (domain.Trip, error) {
			return trip, nil
		},
	}
}

func newTripService(trips repo.TripRepo, participants repo.ParticipantRepo, mailer service.Mailer) *service.TripService {
	return service.NewTripService(trips, participants, mailer, testAPIBaseURL, testWebBaseURL)
}

// ---- Create tests ----------------------------------------------------------

func TestTripService_Create_Valid(t *testing.T) {
	mailer := &mockMailer{}
	svc := newTripService(echoTripRepo(), &mockParticipantRepo{}, mailer)

	got, err := svc.Create(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, "Florianópolis", got.Destination)
	assert.NotEqual(t, uuid.UUID{}, got.ID)

	// The owner gets a confirmation mail pointing at the API confirm endpoint.
	require.Len(t, mailer.sent, 1)
	msg := mailer.sent[0]
	assert.Equal(t, "alice@example.com", msg.To.Email)
	assert.Contains(t, msg.Subject, "Florianópolis")
	assert.Contains(t, msg.HTML, testAPIBaseURL+"/trips/"+got.ID.String()+"/confirm")
}

func TestTripService_Create_BuildsParticipantSet(t *testing.T) {
	var captured []domain.Participant
	trips := &mockTripRepo{
		createWithParticipants: func(_ context.Context, trip domain.Trip, participants []domain.Participant) (domain.Trip, error) {
			captured = participants
			trip.ID = uuid.New()
			return trip, nil
		},
	}
	svc := newTripService(trips, &mockParticipantRepo{}, &mockMailer{})

	in := validInput()
	in.InviteEmails = []string{"bob@example.com", "carol@example.com"}

	_, err := svc.Create(context.Background(), in)

	require.NoError(t, err)
	require.Len(t, captured, 3)

	owner := captured[0]
	assert.Equal(t, "Alice", owner.Name)
	assert.Equal(t, "alice@example.com", owner.Email)
	assert.True(t, owner.IsOwner)
	assert.True(t, owner.IsConfirmed, "owner joins the trip pre-confirmed")

	for _, invitee := range captured[1:] {
		assert.False(t, invitee.IsOwner)
		assert.False(t, invitee.IsConfirmed)
	}
}

func TestTripService_Create_DedupesInviteEmails(t *testing.T) {
	var captured []domain.Participant
	trips := &mockTripRepo{
		createWithParticipants: func(_ context.Context, trip domain.Trip, participants []domain.Participant) (domain.Trip, error) {
			captured = participants
			return trip, nil
		},
	}
	svc := newTripService(trips, &mockParticipantRepo{}, &mockMailer{})

	in := validInput()
	// Duplicates and the owner's own address should all collapse away.
	in.InviteEmails = []string{"bob@example.com", "bob@example.com", "alice@example.com"}

	_, err := svc.Create(context.Background(), in)

	require.NoError(t, err)
	require.Len(t, captured, 2, "owner + one unique invitee")
	assert.Equal(t, "alice@example.com", captured[0].Email)
	assert.Equal(t, "bob@example.com", captured[1].Email)
}

func TestTripService_Create_ShortDestination(t *testing.T) {
	svc := newTripService(echoTripRepo(), &mockParticipantRepo{}, &mockMailer{})

	in := validInput()
	in.Destination = "Rio" // three characters, below the minimum of four

	_, err := svc.Create(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Create_StartsInPast(t *testing.T) {
	svc := newTripService(echoTripRepo(), &mockParticipantRepo{}, &mockMailer{})

	in := validInput()
	in.StartsAt = time.Now().Add(-time.Hour)

	_, err := svc.Create(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestTripService_Create_EndsBeforeStarts(t *testing.T) {
	svc := newTripService(echoTripRepo(), &mockParticipantRepo{}, &mockMailer{})

	in := validInput()
	in.EndsAt = in.StartsAt.Add(-time.Hour)

	_, err := svc.Create(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestTripService_Create_BadOwnerEmail(t *testing.T) {
	svc := newTripService(echoTripRepo(), &mockParticipantRepo{}, &mockMailer{})

	in := validInput()
	in.OwnerEmail = "not-an-email"

	_, err := svc.Create(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Create_BadInviteEmail(t *testing.T) {
	svc := newTripService(echoTripRepo(), &mockParticipantRepo{}, &mockMailer{})

	in := validInput()
	in.InviteEmails = []string{"bob@example.com", "@@broken"}

	_, err := svc.Create(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Create_RepoError(t *testing.T) {
	repoErr := errors.New("db exploded")
	trips := &mockTripRepo{
		createWithParticipants: func(_ context.Context, _ domain.Trip, _ []domain.Participant) (domain.Trip, error) {
			return domain.Trip{}, repoErr
		},
	}
	mailer := &mockMailer{}
	svc := newTripService(trips, &mockParticipantRepo{}, mailer)

	_, err := svc.Create(context.Background(), validInput())

	assert.ErrorIs(t, err, repoErr)
	assert.Empty(t, mailer.sent, "no mail when the trip was not created")
}

func TestTripService_Create_MailFailureDoesNotFail(t *testing.T) {
	mailer := &mockMailer{fail: errors.New("smtp down")}
	svc := newTripService(echoTripRepo(), &mockParticipantRepo{}, mailer)

	_, err := svc.Create(context.Background(), validInput())

	// The trip is already committed when the mail goes out; a delivery
	// failure must not surface to the caller.
	assert.NoError(t, err)
}

// ---- GetByID tests ---------------------------------------------------------

func TestTripService_GetByID_Found(t *testing.T) {
	want := domain.Trip{ID: uuid.New(), Destination: "Gramado"}
	trips := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) { return want, nil },
	}
	svc := newTripService(trips, &mockParticipantRepo{}, &mockMailer{})

	got, err := svc.GetByID(context.Background(), want.ID)

	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
}

func TestTripService_GetByID_NotFound(t *testing.T) {
	trips := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	svc := newTripService(trips, &mockParticipantRepo{}, &mockMailer{})

	_, err := svc.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Update tests ----------------------------------------------------------

func TestTripService_Update_Valid(t *testing.T) {
	svc := newTripService(echoTripRepo(), &mockParticipantRepo{}, &mockMailer{})

	trip := domain.Trip{
		ID:          uuid.New(),
		Destination: "Gramado",
		StartsAt:    time.Now().Add(48 * time.Hour),
		EndsAt:      time.Now().Add(96 * time.Hour),
	}

	got, err := svc.Update(context.Background(), trip)

	require.NoError(t, err)
	assert.Equal(t, "Gramado", got.Destination)
}

func TestTripService_Update_ShortDestination(t *testing.T) {
	svc := newTripService(echoTripRepo(), &mockParticipantRepo{}, &mockMailer{})

	trip := domain.Trip{
		Destination: "Rio",
		StartsAt:    time.Now().Add(48 * time.Hour),
		EndsAt:      time.Now().Add(96 * time.Hour),
	}

	_, err := svc.Update(context.Background(), trip)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Update_NotFound(t *testing.T) {
	trips := &mockTripRepo{
		update: func(_ context.Context, _ domain.Trip) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	svc := newTripService(trips, &mockParticipantRepo{}, &mockMailer{})

	trip := domain.Trip{
		ID:          uuid.New(),
		Destination: "Gramado",
		StartsAt:    time.Now().Add(48 * time.Hour),
		EndsAt:      time.Now().Add(96 * time.Hour),
	}

	_, err := svc.Update(context.Background(), trip)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Confirm tests ---------------------------------------------------------

func TestTripService_Confirm_SendsInvitesToNonOwners(t *testing.T) {
	tripID := uuid.New()
	confirmed := false
	trips := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{ID: tripID, Destination: "Florianópolis"}, nil
		},
		setConfirmed: func(_ context.Context, _ uuid.UUID) error {
			confirmed = true
			return nil
		},
	}
	bobID, carolID := uuid.New(), uuid.New()
	participants := &mockParticipantRepo{
		listByTripID: func(_ context.Context, _ uuid.UUID) ([]domain.Participant, error) {
			return []domain.Participant{
				{ID: uuid.New(), Email: "alice@example.com", IsOwner: true, IsConfirmed: true},
				{ID: bobID, Email: "bob@example.com"},
				{ID: carolID, Email: "carol@example.com"},
			}, nil
		},
	}
	mailer := &mockMailer{}
	svc := newTripService(trips, participants, mailer)

	got, err := svc.Confirm(context.Background(), tripID)

	require.NoError(t, err)
	assert.True(t, got.IsConfirmed)
	assert.True(t, confirmed, "SetConfirmed must be called")

	// One invite per non-owner, each with its own confirmation link.
	require.Len(t, mailer.sent, 2)
	assert.Equal(t, "bob@example.com", mailer.sent[0].To.Email)
	assert.Contains(t, mailer.sent[0].HTML, testAPIBaseURL+"/participants/"+bobID.String()+"/confirm")
	assert.Equal(t, "carol@example.com", mailer.sent[1].To.Email)
	assert.Contains(t, mailer.sent[1].HTML, testAPIBaseURL+"/participants/"+carolID.String()+"/confirm")
}

func TestTripService_Confirm_AlreadyConfirmed(t *testing.T) {
	trips := &mockTripRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			return domain.Trip{ID: id, Destination: "Florianópolis", IsConfirmed: true}, nil
		},
		// setConfirmed deliberately unset — calling it would panic.
	}
	mailer := &mockMailer{}
	svc := newTripService(trips, &mockParticipantRepo{}, mailer)

	got, err := svc.Confirm(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.True(t, got.IsConfirmed)
	assert.Empty(t, mailer.sent, "re-confirming must not resend invites")
}

func TestTripService_Confirm_NotFound(t *testing.T) {
	trips := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	svc := newTripService(trips, &mockParticipantRepo{}, &mockMailer{})

	_, err := svc.Confirm(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- WebURL ----------------------------------------------------------------

func TestTripService_WebURL(t *testing.T) {
	svc := newTripService(&mockTripRepo{}, &mockParticipantRepo{}, &mockMailer{})

	id := uuid.New()
	got := svc.WebURL(id)

	assert.Equal(t, testWebBaseURL+"/trips/"+id.String(), got)
	assert.False(t, strings.Contains(got, "//trips"), "base URL must not end with a slash")
}
