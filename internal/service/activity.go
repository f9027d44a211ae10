package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yuriTakamisawaRibeiro/planner/internal/domain"
	"github.com/yuriTakamisawaRibeiro/planner/internal/repo"
)

// ActivityService implements business logic for itinerary activities.
type ActivityService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
}

// NewActivityService constructs an ActivityService backed by the provided repos.
func NewActivityService(trips repo.TripRepo, activities repo.ActivityRepo) *ActivityService {
	return &ActivityService{trips: trips, activities: activities}
}

// Create validates the activity and persists it.
// Returns domain.ErrNotFound when the trip does not exist,
// domain.ErrValidation for an empty title, and domain.ErrInvalidDateRange
// when occurs_at falls outside the trip's date window.
func (s *ActivityService) Create(ctx context.Context, tripID uuid.UUID, title string, occursAt time.Time) (domain.Activity, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}

	if strings.TrimSpace(title) == "" {
		return domain.Activity{}, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if occursAt.Before(trip.StartsAt) || occursAt.After(trip.EndsAt) {
		return domain.Activity{}, fmt.Errorf("%w: occurs_at must fall inside the trip window", domain.ErrInvalidDateRange)
	}

	result, err := s.activities.Create(ctx, domain.Activity{
		TripID:   tripID,
		Title:    title,
		OccursAt: occursAt,
	})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return result, nil
}

// ListDays returns the trip's itinerary as one entry per day of the trip
// window, each holding that day's activities ordered by occurs_at. Days
// without activities are included with an empty slice so clients can render
// the whole calendar.
func (s *ActivityService) ListDays(ctx context.Context, tripID uuid.UUID) ([]domain.ActivityDay, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListDays: %w", err)
	}

	activities, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListDays: %w", err)
	}

	var days []domain.ActivityDay
	first := dayOf(trip.StartsAt)
	last := dayOf(trip.EndsAt)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		day := domain.ActivityDay{Date: d, Activities: []domain.Activity{}}
		for _, a := range activities {
			if dayOf(a.OccursAt).Equal(d) {
				day.Activities = append(day.Activities, a)
			}
		}
		days = append(days, day)
	}
	return days, nil
}

// dayOf truncates t to midnight UTC of its calendar day.
func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
