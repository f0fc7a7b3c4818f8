package ports

import (
	"context"
	"time"

	"github.com/wenderson1/VibraTicket/internal/domain"
)

type OrderRepo interface {
	// CreateWithTickets reserves the tickets and persists the order as one
	// transaction. Tickets are locked before their status is checked, so
	// two concurrent calls cannot reserve the same ticket. On success the
	// order's ID and TotalAmount are filled in; on any ticket failure
	// nothing is persisted.
	CreateWithTickets(ctx context.Context, o *domain.Order, ticketIDs []string) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	// ApplyPatch re-reads the order under a row lock, enforces the status
	// state machine and the approved-payment gate, applies the patch and
	// cascades ticket status (sold on completion, cancelled on
	// cancellation) in the same transaction.
	ApplyPatch(ctx context.Context, id int64, patch domain.OrderPatch) (*domain.Order, error)
	// CancelExpired cancels pending-payment orders created before the
	// cutoff, cancelling their reserved tickets with them.
	CancelExpired(ctx context.Context, olderThan time.Duration) ([]*domain.Order, error)
}

type PaymentRepo interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	ListByOrder(ctx context.Context, orderID int64) ([]*domain.Payment, error)
	// Settle applies the gateway outcome under a row lock.
	Settle(ctx context.Context, id string, status domain.PaymentStatus, transactionID, gatewayResponse *string) (*domain.Payment, error)
}
