package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TicketStatus string

const (
	TicketStatusAvailable TicketStatus = "available"
	TicketStatusReserved  TicketStatus = "reserved"
	TicketStatusSold      TicketStatus = "sold"
	TicketStatusUsed      TicketStatus = "used"
	TicketStatusCancelled TicketStatus = "cancelled"
)

// Ticket ids are UUIDs so they cannot be guessed from a sequence. A ticket
// belongs to at most one open order at a time; OrderID holds that claim.
type Ticket struct {
	ID           string          `json:"id"`
	TicketNumber string          `json:"ticket_number"`
	Price        decimal.Decimal `json:"price"`
	Status       TicketStatus    `json:"status"`
	EventID      int64           `json:"event_id"`
	SectorID     int64           `json:"sector_id"`
	CustomerID   *int64          `json:"customer_id,omitempty"`
	OrderID      *int64          `json:"order_id,omitempty"`
	Used         bool            `json:"used"`
	UsedAt       *time.Time      `json:"used_at,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// MarkUsed burns the ticket at the gate. Only a sold, unused ticket may be
// used; the transition is one-way.
func (t *Ticket) MarkUsed(now time.Time) error {
	if t.Used || t.Status == TicketStatusUsed {
		return Validationf("ticket %s has already been used", t.ID)
	}
	if t.Status != TicketStatusSold {
		return Validationf("ticket %s is not sold, current status: %s", t.ID, t.Status)
	}

	t.Used = true
	t.UsedAt = &now
	t.Status = TicketStatusUsed
	return nil
}

type IssueTicketsInput struct {
	EventID  int64
	SectorID int64
	Quantity int
}
