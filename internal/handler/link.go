package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/yuriTakamisawaRibeiro/planner/internal/domain"
)

// createLinkRequest carries a new trip link.
type createLinkRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// linkResponse is the link projection returned to clients.
type linkResponse struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	URL   string    `json:"url"`
}

func toLinkResponse(l domain.Link) linkResponse {
	return linkResponse{ID: l.ID, Title: l.Title, URL: l.URL}
}

// CreateLink handles POST /trips/{tripId}/links.
func (s *Server) CreateLink(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripId")
	if !ok {
		return
	}
	var req createLinkRequest
	if !decodeBody(w, r, &req) {
		return
	}

	link, err := s.links.Create(r.Context(), tripID, req.Title, req.URL)
	if err != nil {
		respondDomainError(w, r, err, "trip not found")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"linkId": link.ID})
}

// ListLinks handles GET /trips/{tripId}/links.
func (s *Server) ListLinks(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripId")
	if !ok {
		return
	}

	links, err := s.links.ListByTrip(r.Context(), tripID)
	if err != nil {
		respondDomainError(w, r, err, "trip not found")
		return
	}

	out := make([]linkResponse, len(links))
	for i, l := range links {
		out[i] = toLinkResponse(l)
	}
	respondJSON(w, http.StatusOK, map[string]any{"links": out})
}
