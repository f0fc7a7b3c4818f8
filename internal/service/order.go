package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"
	"github.com/wenderson1/VibraTicket/internal/domain"
	"github.com/wenderson1/VibraTicket/internal/service/ports"
)

type OrderService struct {
	orderRepo    ports.OrderRepo
	customerRepo ports.CustomerRepo
	notifier     ports.OrderNotifier
	logger       logger.Logger
}

func NewOrderService(
	orderRepo ports.OrderRepo,
	customerRepo ports.CustomerRepo,
	notifier ports.OrderNotifier,
	logger logger.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

// Create reserves the referenced tickets for the customer and persists the
// order in one transaction. The total is the sum of the tickets' prices at
// reservation time; it never changes afterwards.
func (s *OrderService) Create(ctx context.Context, input domain.CreateOrderInput) (*domain.Order, error) {
	fields := map[string][]string{}
	if input.CustomerID <= 0 {
		fields["customer_id"] = append(fields["customer_id"], "customer id is required")
	}
	if len(input.TicketIDs) == 0 {
		fields["ticket_ids"] = append(fields["ticket_ids"], "at least one ticket is required")
	}
	if len(fields) > 0 {
		return nil, domain.FieldErrors(fields)
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("check customer: %w", err)
	}
	if !customer.Active {
		return nil, domain.Validation("cannot create an order for an inactive customer")
	}

	order := &domain.Order{
		OrderNumber: domain.NewOrderNumber(time.Now()),
		Status:      domain.OrderStatusPendingPayment,
		Active:      true,
		CustomerID:  input.CustomerID,
	}
	if err = s.orderRepo.CreateWithTickets(ctx, order, input.TicketIDs); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.logger.Info("order created",
		logger.Int64("order_id", order.ID),
		logger.String("order_number", order.OrderNumber),
		logger.Int64("customer_id", order.CustomerID),
		logger.String("total_amount", order.TotalAmount.String()),
		logger.Int("tickets", len(input.TicketIDs)),
	)

	return order, nil
}

// Update drives the order state machine. The transition table, the
// approved-payment gate for completion and the deactivation guard are all
// enforced inside the repository transaction against the freshly locked row.
func (s *OrderService) Update(ctx context.Context, id int64, patch domain.OrderPatch) (*domain.Order, error) {
	if patch.IsZero() {
		return nil, domain.Validation("no fields to update")
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, domain.Validationf("unknown order status: %s", *patch.Status)
	}

	order, err := s.orderRepo.ApplyPatch(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	s.logger.Info("order updated",
		logger.Int64("order_id", order.ID),
		logger.String("status", string(order.Status)),
	)

	if patch.Status != nil {
		switch order.Status {
		case domain.OrderStatusCompleted:
			go s.notifier.NotifyOrderCompleted(context.WithoutCancel(ctx), order)
		case domain.OrderStatusCancelled:
			go s.notifier.NotifyOrderCancelled(context.WithoutCancel(ctx), order)
		}
	}

	return order, nil
}

func (s *OrderService) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

// CancelExpired releases inventory held by abandoned orders: every pending
// order older than the TTL is cancelled along with its reserved tickets.
func (s *OrderService) CancelExpired(ctx context.Context, olderThan time.Duration) ([]*domain.Order, error) {
	cancelled, err := s.orderRepo.CancelExpired(ctx, olderThan)
	if err != nil {
		return nil, fmt.Errorf("cancel expired: %w", err)
	}

	if len(cancelled) > 0 {
		s.logger.Info("expired orders cancelled",
			logger.Int("count", len(cancelled)),
		)

		go s.notifier.NotifyOrdersExpired(context.WithoutCancel(ctx), cancelled)
	}

	return cancelled, nil
}
