package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wenderson1/VibraTicket/internal/domain"
	"github.com/wenderson1/VibraTicket/internal/service/ports/mocks"
)

func TestPaymentService_Create_Success(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	orderRepo := mocks.NewMockOrderRepo(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, orderRepo, log)

	order := &domain.Order{
		ID:          5,
		Status:      domain.OrderStatusPendingPayment,
		TotalAmount: decimal.NewFromInt(250),
		Active:      true,
	}
	orderRepo.EXPECT().GetByID(mock.Anything, int64(5)).Return(order, nil)
	paymentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	payment, err := svc.Create(context.Background(), domain.CreatePaymentInput{
		OrderID: 5,
		Amount:  decimal.NewFromInt(250),
		Method:  domain.PaymentMethodPIX,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, payment.ID)
	assert.Equal(t, domain.PaymentStatusPending, payment.Status)
	assert.Equal(t, int64(5), payment.OrderID)
	assert.True(t, payment.Active)
}

func TestPaymentService_Create_InvalidInput(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	orderRepo := mocks.NewMockOrderRepo(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, orderRepo, log)

	_, err := svc.Create(context.Background(), domain.CreatePaymentInput{
		OrderID: 0,
		Amount:  decimal.NewFromInt(-1),
		Method:  domain.PaymentMethod("cash"),
	})

	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Contains(t, derr.Fields, "order_id")
	assert.Contains(t, derr.Fields, "amount")
	assert.Contains(t, derr.Fields, "method")
}

func TestPaymentService_Create_AmountMismatch(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	orderRepo := mocks.NewMockOrderRepo(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, orderRepo, log)

	order := &domain.Order{
		ID:          5,
		Status:      domain.OrderStatusPendingPayment,
		TotalAmount: decimal.NewFromInt(250),
		Active:      true,
	}
	orderRepo.EXPECT().GetByID(mock.Anything, int64(5)).Return(order, nil)

	_, err := svc.Create(context.Background(), domain.CreatePaymentInput{
		OrderID: 5,
		Amount:  decimal.NewFromInt(200),
		Method:  domain.PaymentMethodPIX,
	})

	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestPaymentService_Create_AmountCheckedBeforeStatus(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	orderRepo := mocks.NewMockOrderRepo(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, orderRepo, log)

	// wrong amount against a completed order: the amount mismatch is the
	// failure that gets reported
	order := &domain.Order{
		ID:          5,
		Status:      domain.OrderStatusCompleted,
		TotalAmount: decimal.NewFromInt(250),
		Active:      true,
	}
	orderRepo.EXPECT().GetByID(mock.Anything, int64(5)).Return(order, nil)

	_, err := svc.Create(context.Background(), domain.CreatePaymentInput{
		OrderID: 5,
		Amount:  decimal.NewFromInt(200),
		Method:  domain.PaymentMethodPIX,
	})

	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	assert.Contains(t, err.Error(), "does not match the order total")
}

func TestPaymentService_Create_OrderNotPending(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	orderRepo := mocks.NewMockOrderRepo(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, orderRepo, log)

	order := &domain.Order{
		ID:          5,
		Status:      domain.OrderStatusCompleted,
		TotalAmount: decimal.NewFromInt(250),
		Active:      true,
	}
	orderRepo.EXPECT().GetByID(mock.Anything, int64(5)).Return(order, nil)

	_, err := svc.Create(context.Background(), domain.CreatePaymentInput{
		OrderID: 5,
		Amount:  decimal.NewFromInt(250),
		Method:  domain.PaymentMethodCreditCard,
	})

	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestPaymentService_Create_InactiveOrder(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	orderRepo := mocks.NewMockOrderRepo(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, orderRepo, log)

	order := &domain.Order{
		ID:          5,
		Status:      domain.OrderStatusPendingPayment,
		TotalAmount: decimal.NewFromInt(250),
		Active:      false,
	}
	orderRepo.EXPECT().GetByID(mock.Anything, int64(5)).Return(order, nil)

	_, err := svc.Create(context.Background(), domain.CreatePaymentInput{
		OrderID: 5,
		Amount:  decimal.NewFromInt(250),
		Method:  domain.PaymentMethodPIX,
	})

	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestPaymentService_Create_OrderNotFound(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	orderRepo := mocks.NewMockOrderRepo(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, orderRepo, log)

	orderRepo.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.NotFound("order not found"))

	_, err := svc.Create(context.Background(), domain.CreatePaymentInput{
		OrderID: 99,
		Amount:  decimal.NewFromInt(250),
		Method:  domain.PaymentMethodPIX,
	})

	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestPaymentService_Settle_Approve(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	orderRepo := mocks.NewMockOrderRepo(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, orderRepo, log)

	txn := "txn-123"
	approved := &domain.Payment{ID: "p1", OrderID: 5, Status: domain.PaymentStatusApproved}
	paymentRepo.EXPECT().Settle(mock.Anything, "p1", domain.PaymentStatusApproved, &txn, (*string)(nil)).
		Return(approved, nil)

	payment, err := svc.Settle(context.Background(), "p1", domain.PaymentStatusApproved, &txn, nil)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusApproved, payment.Status)
}

func TestPaymentService_Settle_UnknownStatus(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	orderRepo := mocks.NewMockOrderRepo(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, orderRepo, log)

	_, err := svc.Settle(context.Background(), "p1", domain.PaymentStatus("paid"), nil, nil)

	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestPaymentService_Settle_InvalidTransition(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	orderRepo := mocks.NewMockOrderRepo(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, orderRepo, log)

	paymentRepo.EXPECT().Settle(mock.Anything, "p1", domain.PaymentStatusRefunded, (*string)(nil), (*string)(nil)).
		Return(nil, domain.Validation("payment cannot move from declined to refunded"))

	_, err := svc.Settle(context.Background(), "p1", domain.PaymentStatusRefunded, nil, nil)

	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}
