package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/yuriTakamisawaRibeiro/planner/internal/domain"
	"github.com/yuriTakamisawaRibeiro/planner/internal/service"
)

// createTripRequest mirrors the web client's trip creation payload.
type createTripRequest struct {
	Destination    string    `json:"destination"`
	StartsAt       time.Time `json:"starts_at"`
	EndsAt         time.Time `json:"ends_at"`
	OwnerName      string    `json:"owner_name"`
	OwnerEmail     string    `json:"owner_email"`
	EmailsToInvite []string  `json:"emails_to_invite"`
}

// updateTripRequest carries the mutable trip fields.
type updateTripRequest struct {
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
}

// tripResponse is the trip projection returned to clients.
type tripResponse struct {
	ID          uuid.UUID `json:"id"`
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	IsConfirmed bool      `json:"is_confirmed"`
}

func toTripResponse(t domain.Trip) tripResponse {
	return tripResponse{
		ID:          t.ID,
		Destination: t.Destination,
		StartsAt:    t.StartsAt,
		EndsAt:      t.EndsAt,
		IsConfirmed: t.IsConfirmed,
	}
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if !decodeBody(w, r, &req) {
		return
	}

	trip, err := s.trips.Create(r.Context(), service.CreateTripInput{
		Destination:  req.Destination,
		StartsAt:     req.StartsAt,
		EndsAt:       req.EndsAt,
		OwnerName:    req.OwnerName,
		OwnerEmail:   req.OwnerEmail,
		InviteEmails: req.EmailsToInvite,
	})
	if err != nil {
		respondDomainError(w, r, err, "trip not found")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"tripId": trip.ID})
}

// GetTrip handles GET /trips/{tripId}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "tripId")
	if !ok {
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		respondDomainError(w, r, err, "trip not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"trip": toTripResponse(trip)})
}

// UpdateTrip handles PUT /trips/{tripId}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "tripId")
	if !ok {
		return
	}
	var req updateTripRequest
	if !decodeBody(w, r, &req) {
		return
	}

	trip, err := s.trips.Update(r.Context(), domain.Trip{
		ID:          id,
		Destination: req.Destination,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	})
	if err != nil {
		respondDomainError(w, r, err, "trip not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"trip": toTripResponse(trip)})
}

// ConfirmTrip handles GET /trips/{tripId}/confirm.
// It is a browser-facing link from the confirmation e-mail, so on success it
// redirects to the trip page in the web app instead of returning JSON.
func (s *Server) ConfirmTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "tripId")
	if !ok {
		return
	}

	trip, err := s.trips.Confirm(r.Context(), id)
	if err != nil {
		respondDomainError(w, r, err, "trip not found")
		return
	}

	http.Redirect(w, r, s.trips.WebURL(trip.ID), http.StatusFound)
}
