package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a scheduled item on a trip's itinerary.
// OccursAt must fall inside the owning trip's date window.
type Activity struct {
	ID        uuid.UUID `json:"id"`
	TripID    uuid.UUID `json:"trip_id"`
	Title     string    `json:"title"`
	OccursAt  time.Time `json:"occurs_at"`
	CreatedAt time.Time `json:"created_at"`
}

// ActivityDay groups a single day's activities for the itinerary view.
// Every day of the trip window gets an entry, including days with no
// activities, so clients can render the full calendar without gap logic.
type ActivityDay struct {
	Date       time.Time  `json:"date"`
	Activities []Activity `json:"activities"`
}
