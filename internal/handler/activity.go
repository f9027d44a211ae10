package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// createActivityRequest carries a new itinerary entry.
type createActivityRequest struct {
	Title    string    `json:"title"`
	OccursAt time.Time `json:"occurs_at"`
}

// activityResponse is a single itinerary entry.
type activityResponse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	OccursAt time.Time `json:"occurs_at"`
}

// activityDayResponse groups one day's activities for the itinerary view.
type activityDayResponse struct {
	Date       time.Time          `json:"date"`
	Activities []activityResponse `json:"activities"`
}

// CreateActivity handles POST /trips/{tripId}/activities.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripId")
	if !ok {
		return
	}
	var req createActivityRequest
	if !decodeBody(w, r, &req) {
		return
	}

	activity, err := s.activities.Create(r.Context(), tripID, req.Title, req.OccursAt)
	if err != nil {
		respondDomainError(w, r, err, "trip not found")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"activityId": activity.ID})
}

// ListActivities handles GET /trips/{tripId}/activities.
// The response carries one entry per day of the trip window, empty days included.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripId")
	if !ok {
		return
	}

	days, err := s.activities.ListDays(r.Context(), tripID)
	if err != nil {
		respondDomainError(w, r, err, "trip not found")
		return
	}

	out := make([]activityDayResponse, len(days))
	for i, day := range days {
		entries := make([]activityResponse, len(day.Activities))
		for j, a := range day.Activities {
			entries[j] = activityResponse{ID: a.ID, Title: a.Title, OccursAt: a.OccursAt}
		}
		out[i] = activityDayResponse{Date: day.Date, Activities: entries}
	}
	respondJSON(w, http.StatusOK, map[string]any{"activities": out})
}
