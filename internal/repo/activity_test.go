package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuriTakamisawaRibeiro/planner/internal/domain"
	"github.com/yuriTakamisawaRibeiro/planner/internal/repo"
)

func TestActivityRepo_Create(t *testing.T) {
	tx := beginTx(t)
	trips := repo.NewTripRepo(tx)
	activities := repo.NewActivityRepo(tx)
	ctx := context.Background()

	trip := createTrip(t, trips)
	occursAt := trip.StartsAt.Add(26 * time.Hour)

	got, err := activities.Create(ctx, domain.Activity{
		TripID:   trip.ID,
		Title:    "Passeio de barco",
		OccursAt: occursAt,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.UUID{}, got.ID)
	assert.Equal(t, trip.ID, got.TripID)
	assert.Equal(t, "Passeio de barco", got.Title)
	assert.True(t, got.OccursAt.Equal(occursAt), "OccursAt mismatch")
	assert.False(t, got.CreatedAt.IsZero())
}

func TestActivityRepo_ListByTripID_OrderedByOccursAt(t *testing.T) {
	tx := beginTx(t)
	trips := repo.NewTripRepo(tx)
	activities := repo.NewActivityRepo(tx)
	ctx := context.Background()

	trip := createTrip(t, trips)

	// Insert out of chronological order.
	for _, a := range []domain.Activity{
		{TripID: trip.ID, Title: "Jantar", OccursAt: trip.StartsAt.Add(36 * time.Hour)},
		{TripID: trip.ID, Title: "Trilha", OccursAt: trip.StartsAt.Add(4 * time.Hour)},
		{TripID: trip.ID, Title: "Almoço", OccursAt: trip.StartsAt.Add(28 * time.Hour)},
	} {
		_, err := activities.Create(ctx, a)
		require.NoError(t, err)
	}

	list, err := activities.ListByTripID(ctx, trip.ID)

	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Trilha", list[0].Title)
	assert.Equal(t, "Almoço", list[1].Title)
	assert.Equal(t, "Jantar", list[2].Title)
}

func TestActivityRepo_ListByTripID_Empty(t *testing.T) {
	tx := beginTx(t)
	activities := repo.NewActivityRepo(tx)

	list, err := activities.ListByTripID(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)
}
