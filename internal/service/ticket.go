package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wenderson1/VibraTicket/internal/domain"
	"github.com/wenderson1/VibraTicket/internal/service/ports"
)

type TicketService struct {
	ticketRepo ports.TicketRepo
	sectorRepo ports.SectorRepo
	eventRepo  ports.EventRepo
}

func NewTicketService(ticketRepo ports.TicketRepo, sectorRepo ports.SectorRepo, eventRepo ports.EventRepo) *TicketService {
	return &TicketService{
		ticketRepo: ticketRepo,
		sectorRepo: sectorRepo,
		eventRepo:  eventRepo,
	}
}

// Issue mints a batch of tickets for a sector at its current price and
// decrements the sector's availability by the same amount, atomically.
func (s *TicketService) Issue(ctx context.Context, input domain.IssueTicketsInput) ([]*domain.Ticket, error) {
	if input.Quantity <= 0 {
		return nil, domain.Validation("quantity must be greater than zero")
	}

	event, err := s.eventRepo.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if event.Status == domain.EventStatusCancelled || event.Status == domain.EventStatusCompleted {
		return nil, domain.Validationf("cannot issue tickets for an event in status %s", event.Status)
	}

	sector, err := s.sectorRepo.GetByID(ctx, input.SectorID)
	if err != nil {
		return nil, fmt.Errorf("check sector: %w", err)
	}
	if sector.EventID != event.ID {
		return nil, domain.Validation("sector does not belong to the event")
	}

	now := time.Now().UTC()
	tickets := make([]*domain.Ticket, 0, input.Quantity)
	for i := 0; i < input.Quantity; i++ {
		tickets = append(tickets, &domain.Ticket{
			ID:           uuid.New().String(),
			TicketNumber: domain.NewTicketNumber(event.ID, now),
			Price:        sector.Price,
			Status:       domain.TicketStatusAvailable,
			EventID:      event.ID,
			SectorID:     sector.ID,
			CreatedAt:    now,
		})
	}

	if err = s.ticketRepo.IssueBatch(ctx, sector.ID, tickets); err != nil {
		return nil, fmt.Errorf("issue tickets: %w", err)
	}

	return tickets, nil
}

// Use marks a sold ticket as used at the gate. A ticket can be used once.
func (s *TicketService) Use(ctx context.Context, id string) (*domain.Ticket, error) {
	ticket, err := s.ticketRepo.MarkUsed(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("use ticket: %w", err)
	}
	return ticket, nil
}

func (s *TicketService) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	return s.ticketRepo.GetByID(ctx, id)
}
