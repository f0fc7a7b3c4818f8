package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
	"github.com/wenderson1/VibraTicket/internal/domain"
	"github.com/wenderson1/VibraTicket/internal/service/ports"
)

type PaymentService struct {
	paymentRepo ports.PaymentRepo
	orderRepo   ports.OrderRepo
	logger      logger.Logger
}

func NewPaymentService(paymentRepo ports.PaymentRepo, orderRepo ports.OrderRepo, logger logger.Logger) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		logger:      logger,
	}
}

// Create registers a pending payment attempt against an order. The amount
// must match the order total exactly and the order itself must still be
// awaiting payment.
func (s *PaymentService) Create(ctx context.Context, input domain.CreatePaymentInput) (*domain.Payment, error) {
	fields := map[string][]string{}
	if input.OrderID <= 0 {
		fields["order_id"] = append(fields["order_id"], "order id is required")
	}
	if !input.Amount.IsPositive() {
		fields["amount"] = append(fields["amount"], "must be greater than zero")
	}
	if !input.Method.Valid() {
		fields["method"] = append(fields["method"], "unknown payment method")
	}
	if len(fields) > 0 {
		return nil, domain.FieldErrors(fields)
	}

	order, err := s.orderRepo.GetByID(ctx, input.OrderID)
	if err != nil {
		return nil, fmt.Errorf("check order: %w", err)
	}
	if !order.Active {
		return nil, domain.Validation("cannot create a payment for an inactive order")
	}
	if !input.Amount.Equal(order.TotalAmount) {
		return nil, domain.Validation("payment amount does not match the order total")
	}
	if order.Status != domain.OrderStatusPendingPayment {
		return nil, domain.Validationf("cannot create a payment for an order in status %s", order.Status)
	}

	payment := &domain.Payment{
		ID:              uuid.New().String(),
		OrderID:         input.OrderID,
		Amount:          input.Amount,
		Method:          input.Method,
		Status:          domain.PaymentStatusPending,
		TransactionID:   input.TransactionID,
		GatewayResponse: input.GatewayResponse,
		Active:          true,
		CreatedAt:       time.Now().UTC(),
	}
	if err = s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	s.logger.Info("payment created",
		logger.String("payment_id", payment.ID),
		logger.Int64("order_id", payment.OrderID),
		logger.String("amount", payment.Amount.String()),
		logger.String("method", string(payment.Method)),
	)

	return payment, nil
}

// Settle records the gateway verdict for a payment attempt. Allowed moves are
// pending to approved or declined and approved to refunded.
func (s *PaymentService) Settle(ctx context.Context, id string, status domain.PaymentStatus, transactionID, gatewayResponse *string) (*domain.Payment, error) {
	if !status.Valid() {
		return nil, domain.Validationf("unknown payment status: %s", status)
	}

	payment, err := s.paymentRepo.Settle(ctx, id, status, transactionID, gatewayResponse)
	if err != nil {
		return nil, fmt.Errorf("settle payment: %w", err)
	}

	s.logger.Info("payment settled",
		logger.String("payment_id", payment.ID),
		logger.Int64("order_id", payment.OrderID),
		logger.String("status", string(payment.Status)),
	)

	return payment, nil
}

func (s *PaymentService) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	return s.paymentRepo.GetByID(ctx, id)
}

func (s *PaymentService) ListByOrder(ctx context.Context, orderID int64) ([]*domain.Payment, error) {
	return s.paymentRepo.ListByOrder(ctx, orderID)
}
