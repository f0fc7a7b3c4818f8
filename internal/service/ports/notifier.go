package ports

import (
	"context"

	"github.com/wenderson1/VibraTicket/internal/domain"
)

// OrderNotifier pushes order lifecycle signals to the back-office channel.
// Implementations must be safe to call from goroutines and must not fail
// the workflow.
type OrderNotifier interface {
	NotifyOrderCompleted(ctx context.Context, o *domain.Order)
	NotifyOrderCancelled(ctx context.Context, o *domain.Order)
	NotifyOrdersExpired(ctx context.Context, orders []*domain.Order)
}
