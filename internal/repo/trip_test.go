package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuriTakamisawaRibeiro/planner/internal/domain"
	"github.com/yuriTakamisawaRibeiro/planner/internal/repo"
	"github.com/yuriTakamisawaRibeiro/planner/testutil"
)

// beginTx opens a transaction against the test database that is rolled back
// when the test finishes, giving free per-test isolation. All repo tests run
// their repos on top of this transaction.
//
// Requires TEST_DATABASE_URL to be set; the test skips itself otherwise.
func beginTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		// Rollback discards all changes made during the test — no cleanup SQL needed.
		_ = tx.Rollback(context.Background())
	})

	return tx
}

// tripFixture returns a domain.Trip with sensible defaults for use in tests.
// Callers can override individual fields after calling this function.
func tripFixture() domain.Trip {
	return domain.Trip{
		Destination: "Florianópolis",
		StartsAt:    time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2030, 6, 15, 18, 0, 0, 0, time.UTC),
	}
}

// ownerFixture returns the owner participant created together with a trip.
func ownerFixture() domain.Participant {
	return domain.Participant{
		Name:        "Alice",
		Email:       "alice@example.com",
		IsOwner:     true,
		IsConfirmed: true,
	}
}

func TestTripRepo_CreateWithParticipants(t *testing.T) {
	tx := beginTx(t)
	trips := repo.NewTripRepo(tx)
	participants := repo.NewParticipantRepo(tx)
	ctx := context.Background()

	got, err := trips.CreateWithParticipants(ctx, tripFixture(), []domain.Participant{
		ownerFixture(),
		{Email: "bob@example.com"},
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.UUID{}, got.ID, "ID should be DB-generated UUID")
	assert.Equal(t, "Florianópolis", got.Destination)
	assert.False(t, got.IsConfirmed, "new trips start unconfirmed")
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")

	list, err := participants.ListByTripID(ctx, got.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	owner := list[0]
	assert.Equal(t, got.ID, owner.TripID)
	assert.Equal(t, "Alice", owner.Name)
	assert.True(t, owner.IsOwner)
	assert.True(t, owner.IsConfirmed)

	invitee := list[1]
	assert.Equal(t, got.ID, invitee.TripID)
	assert.Empty(t, invitee.Name, "invitees start with an empty name")
	assert.False(t, invitee.IsOwner)
	assert.False(t, invitee.IsConfirmed)
}

func TestTripRepo_CreateWithParticipants_DuplicateEmailRollsBack(t *testing.T) {
	tx := beginTx(t)
	trips := repo.NewTripRepo(tx)
	ctx := context.Background()

	input := tripFixture()
	input.Destination = "Atlantis"

	_, err := trips.CreateWithParticipants(ctx, input, []domain.Participant{
		ownerFixture(),
		{Email: "alice@example.com"}, // collides with the owner's email
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyInvited)

	// All-or-nothing: the trip row must not have survived the failed insert.
	var count int
	err = tx.QueryRow(ctx, `SELECT count(*) FROM trips WHERE destination = 'Atlantis'`).Scan(&count)
	require.NoError(t, err)
	assert.Zero(t, count, "failed creation must not leave a trip behind")
}

func TestTripRepo_GetByID(t *testing.T) {
	tx := beginTx(t)
	trips := repo.NewTripRepo(tx)
	ctx := context.Background()

	created, err := trips.CreateWithParticipants(ctx, tripFixture(), []domain.Participant{ownerFixture()})
	require.NoError(t, err)

	got, err := trips.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Destination, got.Destination)
	assert.True(t, got.StartsAt.Equal(created.StartsAt), "StartsAt mismatch")
	assert.True(t, got.EndsAt.Equal(created.EndsAt), "EndsAt mismatch")
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	tx := beginTx(t)
	trips := repo.NewTripRepo(tx)

	_, err := trips.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Update(t *testing.T) {
	tx := beginTx(t)
	trips := repo.NewTripRepo(tx)
	ctx := context.Background()

	created, err := trips.CreateWithParticipants(ctx, tripFixture(), []domain.Participant{ownerFixture()})
	require.NoError(t, err)

	created.Destination = "Gramado"
	created.StartsAt = created.StartsAt.AddDate(0, 1, 0)
	created.EndsAt = created.EndsAt.AddDate(0, 1, 0)

	updated, err := trips.Update(ctx, created)

	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Gramado", updated.Destination)
	assert.True(t, updated.StartsAt.Equal(created.StartsAt))
}

func TestTripRepo_Update_NotFound(t *testing.T) {
	tx := beginTx(t)
	trips := repo.NewTripRepo(tx)

	ghost := tripFixture()
	ghost.ID = uuid.New()

	_, err := trips.Update(context.Background(), ghost)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_SetConfirmed(t *testing.T) {
	tx := beginTx(t)
	trips := repo.NewTripRepo(tx)
	ctx := context.Background()

	created, err := trips.CreateWithParticipants(ctx, tripFixture(), []domain.Participant{ownerFixture()})
	require.NoError(t, err)

	require.NoError(t, trips.SetConfirmed(ctx, created.ID))

	got, err := trips.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.IsConfirmed)

	// Confirming again still matches the row.
	assert.NoError(t, trips.SetConfirmed(ctx, created.ID))
}

func TestTripRepo_SetConfirmed_NotFound(t *testing.T) {
	tx := beginTx(t)
	trips := repo.NewTripRepo(tx)

	err := trips.SetConfirmed(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
