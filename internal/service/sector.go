package service

import (
	"context"
	"fmt"

	"github.com/wenderson1/VibraTicket/internal/domain"
	"github.com/wenderson1/VibraTicket/internal/service/ports"
)

type SectorService struct {
	sectorRepo ports.SectorRepo
	eventRepo  ports.EventRepo
}

func NewSectorService(sectorRepo ports.SectorRepo, eventRepo ports.EventRepo) *SectorService {
	return &SectorService{sectorRepo: sectorRepo, eventRepo: eventRepo}
}

// Create adds a priced seating block to an event. When available_tickets is
// omitted it defaults to the full capacity.
func (s *SectorService) Create(ctx context.Context, input domain.CreateSectorInput) (*domain.Sector, error) {
	fields := map[string][]string{}
	if input.Name == "" {
		fields["name"] = append(fields["name"], "name is required")
	}
	if input.Price.IsNegative() {
		fields["price"] = append(fields["price"], "must not be negative")
	}
	if input.Capacity <= 0 {
		fields["capacity"] = append(fields["capacity"], "must be greater than zero")
	}
	available := input.Capacity
	if input.AvailableTickets != nil {
		available = *input.AvailableTickets
		if available < 0 || available > input.Capacity {
			fields["available_tickets"] = append(fields["available_tickets"], "must be between zero and the capacity")
		}
	}
	if len(fields) > 0 {
		return nil, domain.FieldErrors(fields)
	}

	if _, err := s.eventRepo.GetByID(ctx, input.EventID); err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	sector := &domain.Sector{
		Name:             input.Name,
		Price:            input.Price,
		Capacity:         input.Capacity,
		AvailableTickets: available,
		EventID:          input.EventID,
	}
	if err := s.sectorRepo.Create(ctx, sector); err != nil {
		return nil, fmt.Errorf("create sector: %w", err)
	}

	return sector, nil
}

func (s *SectorService) Update(ctx context.Context, id int64, patch domain.SectorPatch) (*domain.Sector, error) {
	if patch.IsZero() {
		return nil, domain.Validation("no fields to update")
	}

	sector, err := s.sectorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get sector: %w", err)
	}

	patch.Apply(sector)
	if sector.Price.IsNegative() {
		return nil, domain.Validation("price must not be negative")
	}
	if sector.Capacity <= 0 {
		return nil, domain.Validation("capacity must be greater than zero")
	}
	if sector.AvailableTickets < 0 || sector.AvailableTickets > sector.Capacity {
		return nil, domain.Validation("available tickets must be between zero and the capacity")
	}

	if err = s.sectorRepo.Update(ctx, sector); err != nil {
		return nil, fmt.Errorf("update sector: %w", err)
	}

	return sector, nil
}

func (s *SectorService) GetByID(ctx context.Context, id int64) (*domain.Sector, error) {
	return s.sectorRepo.GetByID(ctx, id)
}
