package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yuriTakamisawaRibeiro/planner/internal/domain"
	"github.com/yuriTakamisawaRibeiro/planner/internal/repo"
)

// LinkService implements business logic for trip links.
type LinkService struct {
	trips repo.TripRepo
	links repo.LinkRepo
}

// NewLinkService constructs a LinkService backed by the provided repos.
func NewLinkService(trips repo.TripRepo, links repo.LinkRepo) *LinkService {
	return &LinkService{trips: trips, links: links}
}

// Create validates the link and persists it.
// Returns domain.ErrNotFound when the trip does not exist and
// domain.ErrValidation for an empty title or a non-absolute URL.
func (s *LinkService) Create(ctx context.Context, tripID uuid.UUID, title, rawURL string) (domain.Link, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return domain.Link{}, fmt.Errorf("service.LinkService.Create: %w", err)
	}

	if strings.TrimSpace(title) == "" {
		return domain.Link{}, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if err := validateURL(rawURL); err != nil {
		return domain.Link{}, err
	}

	result, err := s.links.Create(ctx, domain.Link{
		TripID: tripID,
		Title:  title,
		URL:    rawURL,
	})
	if err != nil {
		return domain.Link{}, fmt.Errorf("service.LinkService.Create: %w", err)
	}
	return result, nil
}

// ListByTrip returns all links of a trip ordered by creation.
// Returns domain.ErrNotFound when the trip does not exist.
// Always returns a non-nil slice so callers can safely range over it.
func (s *LinkService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.LinkService.ListByTrip: %w", err)
	}
	links, err := s.links.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.LinkService.ListByTrip: %w", err)
	}
	if links == nil {
		return []domain.Link{}, nil
	}
	return links, nil
}
