package domain

import "github.com/shopspring/decimal"

// Sector is a priced admission tier within an event. Capacity bounds how
// many tickets may ever be issued against it; AvailableTickets counts how
// many may still be issued.
type Sector struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Price            decimal.Decimal `json:"price"`
	Capacity         int             `json:"capacity"`
	AvailableTickets int             `json:"available_tickets"`
	EventID          int64           `json:"event_id"`
}

type CreateSectorInput struct {
	Name             string
	Price            decimal.Decimal
	Capacity         int
	AvailableTickets *int
	EventID          int64
}

type SectorPatch struct {
	Name             *string
	Price            *decimal.Decimal
	Capacity         *int
	AvailableTickets *int
}

func (p SectorPatch) IsZero() bool {
	return p.Name == nil && p.Price == nil && p.Capacity == nil && p.AvailableTickets == nil
}

func (p SectorPatch) Apply(s *Sector) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
	if p.Capacity != nil {
		s.Capacity = *p.Capacity
	}
	if p.AvailableTickets != nil {
		s.AvailableTickets = *p.AvailableTickets
	}
}
