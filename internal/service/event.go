package service

import (
	"context"
	"fmt"

	"github.com/wenderson1/VibraTicket/internal/domain"
	"github.com/wenderson1/VibraTicket/internal/service/ports"
)

type EventService struct {
	eventRepo     ports.EventRepo
	venueRepo     ports.VenueRepo
	affiliateRepo ports.AffiliateRepo
}

func NewEventService(eventRepo ports.EventRepo, venueRepo ports.VenueRepo, affiliateRepo ports.AffiliateRepo) *EventService {
	return &EventService{
		eventRepo:     eventRepo,
		venueRepo:     venueRepo,
		affiliateRepo: affiliateRepo,
	}
}

// Create validates the schedule and both references before inserting the
// event in draft status. Two events may not overlap at the same venue;
// period boundaries are inclusive, so back-to-back events must not touch.
func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	fields := map[string][]string{}
	if input.Name == "" {
		fields["name"] = append(fields["name"], "name is required")
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		fields["start_date"] = append(fields["start_date"], "start and end dates are required")
	} else if input.EndDate.Before(input.StartDate) {
		fields["end_date"] = append(fields["end_date"], "must not be before the start date")
	}
	if input.MinimumAge < 0 {
		fields["minimum_age"] = append(fields["minimum_age"], "must not be negative")
	}
	if len(fields) > 0 {
		return nil, domain.FieldErrors(fields)
	}

	if _, err := s.venueRepo.GetByID(ctx, input.VenueID); err != nil {
		return nil, fmt.Errorf("check venue: %w", err)
	}
	affiliate, err := s.affiliateRepo.GetByID(ctx, input.AffiliateID)
	if err != nil {
		return nil, fmt.Errorf("check affiliate: %w", err)
	}
	if !affiliate.Active {
		return nil, domain.Validation("cannot create an event with an inactive affiliate")
	}

	conflict, err := s.eventRepo.FindOverlap(ctx, input.VenueID, input.StartDate, input.EndDate, 0)
	if err != nil {
		return nil, fmt.Errorf("check venue schedule: %w", err)
	}
	if conflict != nil {
		return nil, domain.Validationf("venue is already booked by event %q in this period", conflict.Name)
	}

	event := &domain.Event{
		Name:        input.Name,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		MinimumAge:  input.MinimumAge,
		Status:      domain.EventStatusDraft,
		VenueID:     input.VenueID,
		AffiliateID: input.AffiliateID,
	}
	if err = s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

// Update applies a partial patch. Whenever the patch touches the schedule or
// the venue, the overlap check runs again over the merged values, excluding
// the event itself.
func (s *EventService) Update(ctx context.Context, id int64, patch domain.EventPatch) (*domain.Event, error) {
	if patch.IsZero() {
		return nil, domain.Validation("no fields to update")
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, domain.Validationf("unknown event status: %s", *patch.Status)
	}
	if patch.MinimumAge != nil && *patch.MinimumAge < 0 {
		return nil, domain.Validation("minimum age must not be negative")
	}

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	if patch.VenueID != nil && *patch.VenueID != event.VenueID {
		if _, err = s.venueRepo.GetByID(ctx, *patch.VenueID); err != nil {
			return nil, fmt.Errorf("check venue: %w", err)
		}
	}
	if patch.AffiliateID != nil && *patch.AffiliateID != event.AffiliateID {
		affiliate, err := s.affiliateRepo.GetByID(ctx, *patch.AffiliateID)
		if err != nil {
			return nil, fmt.Errorf("check affiliate: %w", err)
		}
		if !affiliate.Active {
			return nil, domain.Validation("cannot assign an inactive affiliate to an event")
		}
	}

	if patch.TouchesSchedule() {
		start, end, venueID := event.StartDate, event.EndDate, event.VenueID
		if patch.StartDate != nil {
			start = *patch.StartDate
		}
		if patch.EndDate != nil {
			end = *patch.EndDate
		}
		if patch.VenueID != nil {
			venueID = *patch.VenueID
		}
		if end.Before(start) {
			return nil, domain.Validation("end date must not be before the start date")
		}

		conflict, err := s.eventRepo.FindOverlap(ctx, venueID, start, end, event.ID)
		if err != nil {
			return nil, fmt.Errorf("check venue schedule: %w", err)
		}
		if conflict != nil {
			return nil, domain.Validationf("venue is already booked by event %q in this period", conflict.Name)
		}
	}

	patch.Apply(event)
	if err = s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return event, nil
}

// Delete removes an event that never went on sale. Published and completed
// events stay on record, as does anything that already has tickets.
func (s *EventService) Delete(ctx context.Context, id int64) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}
	if !event.Deletable() {
		return domain.Validationf("cannot delete an event in status %s", event.Status)
	}

	hasTickets, err := s.eventRepo.HasTickets(ctx, id)
	if err != nil {
		return fmt.Errorf("check tickets: %w", err)
	}
	if hasTickets {
		return domain.Validation("cannot delete an event that has tickets")
	}

	if err = s.eventRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (s *EventService) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

func (s *EventService) GetDetails(ctx context.Context, id int64) (*domain.EventDetails, error) {
	return s.eventRepo.GetDetails(ctx, id)
}

func (s *EventService) GetDetailsByTicketID(ctx context.Context, ticketID string) (*domain.EventDetails, error) {
	return s.eventRepo.GetDetailsByTicketID(ctx, ticketID)
}
