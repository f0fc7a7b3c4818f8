package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"github.com/wenderson1/VibraTicket/internal/domain"
	"github.com/wenderson1/VibraTicket/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestOrderService_Create_Success(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)
	customerRepo := mocks.NewMockCustomerRepo(t)
	notifier := mocks.NewMockOrderNotifier(t)
	log := newTestLogger(t)

	svc := NewOrderService(orderRepo, customerRepo, notifier, log)

	customer := &domain.Customer{ID: 7, Active: true}
	customerRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(customer, nil)
	orderRepo.EXPECT().CreateWithTickets(mock.Anything, mock.Anything, []string{"t1", "t2"}).
		RunAndReturn(func(_ context.Context, o *domain.Order, _ []string) error {
			o.ID = 42
			o.TotalAmount = decimal.NewFromInt(300)
			return nil
		})

	order, err := svc.Create(context.Background(), domain.CreateOrderInput{
		CustomerID: 7,
		TicketIDs:  []string{"t1", "t2"},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), order.ID)
	assert.Equal(t, domain.OrderStatusPendingPayment, order.Status)
	assert.True(t, order.Active)
	assert.NotEmpty(t, order.OrderNumber)
	assert.True(t, decimal.NewFromInt(300).Equal(order.TotalAmount))
}

func TestOrderService_Create_NoTickets(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)
	customerRepo := mocks.NewMockCustomerRepo(t)
	notifier := mocks.NewMockOrderNotifier(t)
	log := newTestLogger(t)

	svc := NewOrderService(orderRepo, customerRepo, notifier, log)

	_, err := svc.Create(context.Background(), domain.CreateOrderInput{CustomerID: 7})

	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Contains(t, derr.Fields, "ticket_ids")
}

func TestOrderService_Create_CustomerNotFound(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)
	customerRepo := mocks.NewMockCustomerRepo(t)
	notifier := mocks.NewMockOrderNotifier(t)
	log := newTestLogger(t)

	svc := NewOrderService(orderRepo, customerRepo, notifier, log)

	customerRepo.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.NotFound("customer not found"))

	_, err := svc.Create(context.Background(), domain.CreateOrderInput{
		CustomerID: 99,
		TicketIDs:  []string{"t1"},
	})

	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestOrderService_Create_InactiveCustomer(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)
	customerRepo := mocks.NewMockCustomerRepo(t)
	notifier := mocks.NewMockOrderNotifier(t)
	log := newTestLogger(t)

	svc := NewOrderService(orderRepo, customerRepo, notifier, log)

	customerRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(&domain.Customer{ID: 7, Active: false}, nil)

	_, err := svc.Create(context.Background(), domain.CreateOrderInput{
		CustomerID: 7,
		TicketIDs:  []string{"t1"},
	})

	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestOrderService_Create_TicketUnavailable(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)
	customerRepo := mocks.NewMockCustomerRepo(t)
	notifier := mocks.NewMockOrderNotifier(t)
	log := newTestLogger(t)

	svc := NewOrderService(orderRepo, customerRepo, notifier, log)

	customerRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(&domain.Customer{ID: 7, Active: true}, nil)
	orderRepo.EXPECT().CreateWithTickets(mock.Anything, mock.Anything, []string{"t1"}).
		Return(domain.Validationf("ticket is not available: %s", "t1"))

	_, err := svc.Create(context.Background(), domain.CreateOrderInput{
		CustomerID: 7,
		TicketIDs:  []string{"t1"},
	})

	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestOrderService_Update_Complete_Notifies(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)
	customerRepo := mocks.NewMockCustomerRepo(t)
	notifier := mocks.NewMockOrderNotifier(t)
	log := newTestLogger(t)

	svc := NewOrderService(orderRepo, customerRepo, notifier, log)

	status := domain.OrderStatusCompleted
	patch := domain.OrderPatch{Status: &status}
	completed := &domain.Order{ID: 1, Status: domain.OrderStatusCompleted, Active: true}

	orderRepo.EXPECT().ApplyPatch(mock.Anything, int64(1), patch).Return(completed, nil)
	notifier.EXPECT().NotifyOrderCompleted(mock.Anything, completed).Return()

	order, err := svc.Update(context.Background(), 1, patch)

	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, order.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestOrderService_Update_Cancel_Notifies(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)
	customerRepo := mocks.NewMockCustomerRepo(t)
	notifier := mocks.NewMockOrderNotifier(t)
	log := newTestLogger(t)

	svc := NewOrderService(orderRepo, customerRepo, notifier, log)

	status := domain.OrderStatusCancelled
	patch := domain.OrderPatch{Status: &status}
	cancelled := &domain.Order{ID: 1, Status: domain.OrderStatusCancelled, Active: true}

	orderRepo.EXPECT().ApplyPatch(mock.Anything, int64(1), patch).Return(cancelled, nil)
	notifier.EXPECT().NotifyOrderCancelled(mock.Anything, cancelled).Return()

	_, err := svc.Update(context.Background(), 1, patch)

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestOrderService_Update_EmptyPatch(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)
	customerRepo := mocks.NewMockCustomerRepo(t)
	notifier := mocks.NewMockOrderNotifier(t)
	log := newTestLogger(t)

	svc := NewOrderService(orderRepo, customerRepo, notifier, log)

	_, err := svc.Update(context.Background(), 1, domain.OrderPatch{})

	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestOrderService_Update_UnknownStatus(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)
	customerRepo := mocks.NewMockCustomerRepo(t)
	notifier := mocks.NewMockOrderNotifier(t)
	log := newTestLogger(t)

	svc := NewOrderService(orderRepo, customerRepo, notifier, log)

	bad := domain.OrderStatus("paid")
	_, err := svc.Update(context.Background(), 1, domain.OrderPatch{Status: &bad})

	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestOrderService_Update_InvalidTransition(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)
	customerRepo := mocks.NewMockCustomerRepo(t)
	notifier := mocks.NewMockOrderNotifier(t)
	log := newTestLogger(t)

	svc := NewOrderService(orderRepo, customerRepo, notifier, log)

	status := domain.OrderStatusCompleted
	patch := domain.OrderPatch{Status: &status}
	orderRepo.EXPECT().ApplyPatch(mock.Anything, int64(1), patch).
		Return(nil, domain.Validation("order cannot move from cancelled to completed"))

	_, err := svc.Update(context.Background(), 1, patch)

	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestOrderService_CancelExpired_Success(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)
	customerRepo := mocks.NewMockCustomerRepo(t)
	notifier := mocks.NewMockOrderNotifier(t)
	log := newTestLogger(t)

	svc := NewOrderService(orderRepo, customerRepo, notifier, log)

	cancelled := []*domain.Order{
		{ID: 1, OrderNumber: "ORD-1", Status: domain.OrderStatusCancelled},
		{ID: 2, OrderNumber: "ORD-2", Status: domain.OrderStatusCancelled},
	}
	orderRepo.EXPECT().CancelExpired(mock.Anything, 30*time.Minute).Return(cancelled, nil)
	notifier.EXPECT().NotifyOrdersExpired(mock.Anything, cancelled).Return()

	result, err := svc.CancelExpired(context.Background(), 30*time.Minute)

	require.NoError(t, err)
	assert.Len(t, result, 2)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestOrderService_CancelExpired_NoneExpired(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)
	customerRepo := mocks.NewMockCustomerRepo(t)
	notifier := mocks.NewMockOrderNotifier(t)
	log := newTestLogger(t)

	svc := NewOrderService(orderRepo, customerRepo, notifier, log)

	orderRepo.EXPECT().CancelExpired(mock.Anything, 30*time.Minute).Return(nil, nil)

	result, err := svc.CancelExpired(context.Background(), 30*time.Minute)

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestOrderService_CancelExpired_RepoError(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)
	customerRepo := mocks.NewMockCustomerRepo(t)
	notifier := mocks.NewMockOrderNotifier(t)
	log := newTestLogger(t)

	svc := NewOrderService(orderRepo, customerRepo, notifier, log)

	orderRepo.EXPECT().CancelExpired(mock.Anything, 30*time.Minute).Return(nil, errors.New("db error"))

	_, err := svc.CancelExpired(context.Background(), 30*time.Minute)

	require.Error(t, err)
}
