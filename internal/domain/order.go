package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPendingPayment OrderStatus = "pending_payment"
	OrderStatusCompleted      OrderStatus = "completed"
	OrderStatusCancelled      OrderStatus = "cancelled"
	OrderStatusRefunded       OrderStatus = "refunded"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPendingPayment, OrderStatusCompleted, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

// orderTransitions is the single source of truth for legal status changes.
// Every write path that can change an order's status consults it through
// CanTransitionTo; a same-status update is always a legal no-op.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPendingPayment: {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted:      {OrderStatusRefunded},
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range orderTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

type Order struct {
	ID          int64           `json:"id"`
	OrderNumber string          `json:"order_number"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      OrderStatus     `json:"status"`
	Active      bool            `json:"active"`
	CustomerID  int64           `json:"customer_id"`
	CreatedAt   time.Time       `json:"created_at"`
}

type CreateOrderInput struct {
	CustomerID int64
	TicketIDs  []string
}

// OrderPatch can change status, the active flag, or both in one request.
type OrderPatch struct {
	Status *OrderStatus
	Active *bool
}

func (p OrderPatch) IsZero() bool {
	return p.Status == nil && p.Active == nil
}

// ApplyPatch mutates the order per the patch, enforcing the state machine.
// hasApprovedPayment must reflect whether an active approved payment exists
// for the order; it gates the transition to Completed. The completed-order
// guard on deactivation checks the status after any status change in the
// same patch, so completing and deactivating in one call is still rejected.
func (o *Order) ApplyPatch(p OrderPatch, hasApprovedPayment bool) error {
	if p.Status != nil {
		next := *p.Status
		if !next.Valid() {
			return Validationf("unknown order status: %s", next)
		}
		if !o.Status.CanTransitionTo(next) {
			return Validationf("invalid order status transition from %s to %s", o.Status, next)
		}
		if next == OrderStatusCompleted && o.Status != OrderStatusCompleted && !hasApprovedPayment {
			return Validation("cannot complete an order without an approved payment")
		}
		o.Status = next
	}

	if p.Active != nil {
		if !*p.Active && o.Status == OrderStatusCompleted {
			return Validation("cannot deactivate a completed order")
		}
		o.Active = *p.Active
	}

	return nil
}

// ReservationTotal prices an order against the ticket rows read under lock.
// IDs are checked in input order so the first offending id is the one named:
// a repeated id is rejected, a missing id is not found, and a ticket in any
// status but Available fails validation. On success the total is the decimal
// sum of the ticket prices.
func ReservationTotal(ticketIDs []string, tickets map[string]*Ticket) (decimal.Decimal, error) {
	total := decimal.Zero
	seen := make(map[string]bool, len(ticketIDs))
	for _, id := range ticketIDs {
		if seen[id] {
			return decimal.Zero, Validationf("duplicate ticket id: %s", id)
		}
		seen[id] = true

		t, ok := tickets[id]
		if !ok {
			return decimal.Zero, NotFoundf("ticket not found: %s", id)
		}
		if t.Status != TicketStatusAvailable {
			return decimal.Zero, Validationf("ticket is not available: %s", id)
		}
		total = total.Add(t.Price)
	}
	return total, nil
}

// NewOrderNumber builds a date-stamped number with a random suffix, e.g.
// ORD-20260901-9f2c41aa. Uniqueness is best-effort via randomness and
// backstopped by the unique index; a collision surfaces as a conflict.
func NewOrderNumber(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("ORD-%s-%s", now.UTC().Format("20060102"), suffix)
}

// NewTicketNumber builds a readable ticket code scoped to an event.
func NewTicketNumber(eventID int64, now time.Time) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("TKT-%d-%s-%s", eventID, now.UTC().Format("20060102"), suffix)
}
