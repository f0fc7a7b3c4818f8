package service

import (
	"context"
	"fmt"

	"github.com/wenderson1/VibraTicket/internal/domain"
	"github.com/wenderson1/VibraTicket/internal/service/ports"
)

type VenueService struct {
	venueRepo ports.VenueRepo
}

func NewVenueService(venueRepo ports.VenueRepo) *VenueService {
	return &VenueService{venueRepo: venueRepo}
}

func (s *VenueService) Create(ctx context.Context, input domain.CreateVenueInput) (*domain.Venue, error) {
	fields := map[string][]string{}
	if input.Name == "" {
		fields["name"] = append(fields["name"], "name is required")
	}
	if input.Address == "" {
		fields["address"] = append(fields["address"], "address is required")
	}
	if input.City == "" {
		fields["city"] = append(fields["city"], "city is required")
	}
	if input.State == "" {
		fields["state"] = append(fields["state"], "state is required")
	}
	if input.Capacity <= 0 {
		fields["capacity"] = append(fields["capacity"], "must be greater than zero")
	}
	if len(fields) > 0 {
		return nil, domain.FieldErrors(fields)
	}

	venue := &domain.Venue{
		Name:      input.Name,
		Address:   input.Address,
		City:      input.City,
		State:     input.State,
		ZipCode:   input.ZipCode,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Capacity:  input.Capacity,
	}
	if err := s.venueRepo.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("create venue: %w", err)
	}

	return venue, nil
}

func (s *VenueService) Update(ctx context.Context, id int64, patch domain.VenuePatch) (*domain.Venue, error) {
	if patch.IsZero() {
		return nil, domain.Validation("no fields to update")
	}
	if patch.Capacity != nil && *patch.Capacity <= 0 {
		return nil, domain.Validation("capacity must be greater than zero")
	}

	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}

	patch.Apply(venue)
	if err = s.venueRepo.Update(ctx, venue); err != nil {
		return nil, fmt.Errorf("update venue: %w", err)
	}

	return venue, nil
}

// Delete removes a venue outright. A venue that hosts events, past or
// future, cannot be removed.
func (s *VenueService) Delete(ctx context.Context, id int64) error {
	hasEvents, err := s.venueRepo.HasEvents(ctx, id)
	if err != nil {
		return fmt.Errorf("check events: %w", err)
	}
	if hasEvents {
		return domain.Validation("cannot delete a venue that has events")
	}

	if err = s.venueRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete venue: %w", err)
	}
	return nil
}

func (s *VenueService) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	return s.venueRepo.GetByID(ctx, id)
}
