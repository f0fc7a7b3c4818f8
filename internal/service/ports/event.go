package ports

import (
	"context"
	"time"

	"github.com/wenderson1/VibraTicket/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	GetDetails(ctx context.Context, id int64) (*domain.EventDetails, error)
	GetDetailsByTicketID(ctx context.Context, ticketID string) (*domain.EventDetails, error)
	// FindOverlap returns any non-cancelled event at the venue whose
	// interval intersects [start, end], excluding excludeID (0 excludes
	// nothing). Absence is (nil, nil), never an error.
	FindOverlap(ctx context.Context, venueID int64, start, end time.Time, excludeID int64) (*domain.Event, error)
	HasTickets(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id int64) error
}

type SectorRepo interface {
	Create(ctx context.Context, s *domain.Sector) error
	GetByID(ctx context.Context, id int64) (*domain.Sector, error)
	Update(ctx context.Context, s *domain.Sector) error
}

type TicketRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	// IssueBatch inserts the tickets and decrements the sector's available
	// counter in one transaction; it fails without side effects when the
	// sector cannot cover the batch.
	IssueBatch(ctx context.Context, sectorID int64, tickets []*domain.Ticket) error
	// MarkUsed flips a sold, unused ticket to used atomically and returns
	// the updated row.
	MarkUsed(ctx context.Context, id string) (*domain.Ticket, error)
}
