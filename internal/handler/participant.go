package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/yuriTakamisawaRibeiro/planner/internal/domain"
)

// inviteRequest carries the invitee's e-mail address.
type inviteRequest struct {
	Email string `json:"email"`
}

// participantResponse is the participant projection returned to clients.
// It deliberately omits trip internals — only what the confirmation page needs.
type participantResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	IsConfirmed bool      `json:"is_confirmed"`
}

func toParticipantResponse(p domain.Participant) participantResponse {
	return participantResponse{
		ID:          p.ID,
		Name:        p.Name,
		Email:       p.Email,
		IsConfirmed: p.IsConfirmed,
	}
}

// InviteParticipant handles POST /trips/{tripId}/invites.
func (s *Server) InviteParticipant(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripId")
	if !ok {
		return
	}
	var req inviteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	p, err := s.participants.Invite(r.Context(), tripID, req.Email)
	if err != nil {
		respondDomainError(w, r, err, "trip not found")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"participantId": p.ID})
}

// ListParticipants handles GET /trips/{tripId}/participants.
func (s *Server) ListParticipants(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripId")
	if !ok {
		return
	}

	participants, err := s.participants.ListByTrip(r.Context(), tripID)
	if err != nil {
		respondDomainError(w, r, err, "trip not found")
		return
	}

	out := make([]participantResponse, len(participants))
	for i, p := range participants {
		out[i] = toParticipantResponse(p)
	}
	respondJSON(w, http.StatusOK, map[string]any{"participants": out})
}

// GetParticipant handles GET /participants/{participantId}.
func (s *Server) GetParticipant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "participantId")
	if !ok {
		return
	}

	p, err := s.participants.GetByID(r.Context(), id)
	if err != nil {
		respondDomainError(w, r, err, "participant not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"participant": toParticipantResponse(p)})
}

// ConfirmParticipant handles GET /participants/{participantId}/confirm.
// Like trip confirmation, this is a browser-facing e-mail link — on success
// it redirects to the trip page in the web app.
func (s *Server) ConfirmParticipant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "participantId")
	if !ok {
		return
	}

	p, err := s.participants.Confirm(r.Context(), id)
	if err != nil {
		respondDomainError(w, r, err, "participant not found")
		return
	}

	http.Redirect(w, r, s.participants.WebURL(p.TripID), http.StatusFound)
}
