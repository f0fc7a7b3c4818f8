package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wenderson1/VibraTicket/internal/domain"
	"github.com/wenderson1/VibraTicket/internal/handler/dto"
	hmocks "github.com/wenderson1/VibraTicket/internal/handler/mocks"
)

type testMocks struct {
	venue     *hmocks.MockVenueSvc
	affiliate *hmocks.MockAffiliateSvc
	customer  *hmocks.MockCustomerSvc
	event     *hmocks.MockEventSvc
	sector    *hmocks.MockSectorSvc
	ticket    *hmocks.MockTicketSvc
	order     *hmocks.MockOrderSvc
	payment   *hmocks.MockPaymentSvc
}

func setupRouter(t *testing.T) (*testMocks, http.Handler) {
	t.Helper()
	m := &testMocks{
		venue:     hmocks.NewMockVenueSvc(t),
		affiliate: hmocks.NewMockAffiliateSvc(t),
		customer:  hmocks.NewMockCustomerSvc(t),
		event:     hmocks.NewMockEventSvc(t),
		sector:    hmocks.NewMockSectorSvc(t),
		ticket:    hmocks.NewMockTicketSvc(t),
		order:     hmocks.NewMockOrderSvc(t),
		payment:   hmocks.NewMockPaymentSvc(t),
	}

	h := NewHandler(m.venue, m.affiliate, m.customer, m.event, m.sector, m.ticket, m.order, m.payment)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/venues", h.CreateVenue)
		api.GET("/venues/:id", h.GetVenue)
		api.DELETE("/venues/:id", h.DeleteVenue)
		api.POST("/affiliates", h.CreateAffiliate)
		api.POST("/customers", h.CreateCustomer)
		api.POST("/events", h.CreateEvent)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events/:id/tickets", h.IssueTickets)
		api.GET("/tickets/:id", h.GetTicket)
		api.POST("/tickets/:id/use", h.UseTicket)
		api.POST("/orders", h.CreateOrder)
		api.PATCH("/orders/:id", h.UpdateOrder)
		api.GET("/orders/:id/payments", h.ListOrderPayments)
		api.POST("/payments", h.CreatePayment)
		api.POST("/payments/:id/settle", h.SettlePayment)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Venues ---

func TestHandler_CreateVenue_Success(t *testing.T) {
	m, r := setupRouter(t)

	venue := &domain.Venue{
		ID:       1,
		Name:     "Allianz Parque",
		Address:  "Av. Francisco Matarazzo, 1705",
		City:     "Sao Paulo",
		State:    "SP",
		Capacity: 43000,
	}
	m.venue.EXPECT().Create(mock.Anything, mock.Anything).Return(venue, nil)

	w := doJSON(t, r, http.MethodPost, "/api/venues", dto.CreateVenueRequest{
		Name:     "Allianz Parque",
		Address:  "Av. Francisco Matarazzo, 1705",
		City:     "Sao Paulo",
		State:    "SP",
		Capacity: 43000,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.VenueResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Allianz Parque", resp.Name)
}

func TestHandler_CreateVenue_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/venues", map[string]any{"name": ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetVenue_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	m.venue.EXPECT().GetByID(mock.Anything, int64(42)).Return(nil, domain.NotFound("venue 42 not found"))

	w := doJSON(t, r, http.MethodGet, "/api/venues/42", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetVenue_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/venues/not-a-number", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteVenue_HasEvents(t *testing.T) {
	m, r := setupRouter(t)

	m.venue.EXPECT().Delete(mock.Anything, int64(7)).Return(domain.Validation("cannot delete a venue that has events"))

	w := doJSON(t, r, http.MethodDelete, "/api/venues/7", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Affiliates ---

func TestHandler_CreateAffiliate_Conflict(t *testing.T) {
	m, r := setupRouter(t)

	m.affiliate.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.Conflict("an affiliate with this document already exists"))

	w := doJSON(t, r, http.MethodPost, "/api/affiliates", dto.CreateAffiliateRequest{
		Name:                  "Show Promotions",
		FullName:              "Show Promotions LTDA",
		Document:              "12345678000190",
		DefaultCommissionRate: "10",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Customers ---

func TestHandler_CreateCustomer_Success(t *testing.T) {
	m, r := setupRouter(t)

	customer := &domain.Customer{
		ID:        3,
		FullName:  "Maria da Silva",
		Name:      "Maria",
		Email:     "maria@example.com",
		Document:  "12345678901",
		BirthDate: time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
		Active:    true,
		CreatedAt: time.Now(),
	}
	m.customer.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in domain.CreateCustomerInput) bool {
		return in.BirthDate.Equal(time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC))
	})).Return(customer, nil)

	w := doJSON(t, r, http.MethodPost, "/api/customers", dto.CreateCustomerRequest{
		FullName:  "Maria da Silva",
		Name:      "Maria",
		Email:     "maria@example.com",
		Document:  "12345678901",
		BirthDate: "1990-05-20",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CustomerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "1990-05-20", resp.BirthDate)
}

func TestHandler_CreateCustomer_InvalidBirthDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/customers", dto.CreateCustomerRequest{
		FullName:  "Maria da Silva",
		Name:      "Maria",
		Email:     "maria@example.com",
		Document:  "12345678901",
		BirthDate: "not-a-date",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	end := start.Add(4 * time.Hour)
	event := &domain.Event{
		ID:          10,
		Name:        "Summer Festival",
		StartDate:   start,
		EndDate:     end,
		Status:      domain.EventStatusDraft,
		VenueID:     1,
		AffiliateID: 2,
		CreatedAt:   time.Now(),
	}
	m.event.EXPECT().Create(mock.Anything, mock.Anything).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Name:        "Summer Festival",
		StartDate:   start.Format(time.RFC3339),
		EndDate:     end.Format(time.RFC3339),
		VenueID:     1,
		AffiliateID: 2,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "draft", resp.Status)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Name:        "Summer Festival",
		StartDate:   "not-a-date",
		EndDate:     time.Now().Format(time.RFC3339),
		VenueID:     1,
		AffiliateID: 2,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	details := &domain.EventDetails{
		Event: domain.Event{
			ID:        10,
			Name:      "Summer Festival",
			StartDate: time.Now(),
			EndDate:   time.Now().Add(4 * time.Hour),
			Status:    domain.EventStatusPublished,
			CreatedAt: time.Now(),
		},
		Venue:     domain.VenueSummary{ID: 1, Name: "Allianz Parque", Capacity: 43000},
		Affiliate: domain.AffiliateSummary{ID: 2, Name: "Show Promotions", Document: "12345678000190"},
	}
	m.event.EXPECT().GetDetails(mock.Anything, int64(10)).Return(details, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/10", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Allianz Parque", resp.Venue.Name)
	assert.Equal(t, int64(2), resp.Affiliate.ID)
}

// --- Tickets ---

func TestHandler_IssueTickets_Success(t *testing.T) {
	m, r := setupRouter(t)

	tickets := []*domain.Ticket{
		{ID: uuid.New().String(), TicketNumber: "TKT-10-20260901-aaaaaaaa", Price: decimal.NewFromInt(150), Status: domain.TicketStatusAvailable, EventID: 10, SectorID: 5, CreatedAt: time.Now()},
		{ID: uuid.New().String(), TicketNumber: "TKT-10-20260901-bbbbbbbb", Price: decimal.NewFromInt(150), Status: domain.TicketStatusAvailable, EventID: 10, SectorID: 5, CreatedAt: time.Now()},
	}
	m.ticket.EXPECT().Issue(mock.Anything, domain.IssueTicketsInput{EventID: 10, SectorID: 5, Quantity: 2}).Return(tickets, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/10/tickets", dto.IssueTicketsRequest{SectorID: 5, Quantity: 2})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp []dto.TicketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "150", resp[0].Price)
}

func TestHandler_GetTicket_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/tickets/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UseTicket_Success(t *testing.T) {
	m, r := setupRouter(t)

	ticketID := uuid.New().String()
	usedAt := time.Now()
	ticket := &domain.Ticket{
		ID:           ticketID,
		TicketNumber: "TKT-10-20260901-cccccccc",
		Price:        decimal.NewFromInt(150),
		Status:       domain.TicketStatusUsed,
		EventID:      10,
		SectorID:     5,
		Used:         true,
		UsedAt:       &usedAt,
		CreatedAt:    time.Now(),
	}
	m.ticket.EXPECT().Use(mock.Anything, ticketID).Return(ticket, nil)

	w := doJSON(t, r, http.MethodPost, "/api/tickets/"+ticketID+"/use", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TicketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Used)
	assert.Equal(t, "used", resp.Status)
}

// --- Orders ---

func TestHandler_CreateOrder_Success(t *testing.T) {
	m, r := setupRouter(t)

	order := &domain.Order{
		ID:          1,
		OrderNumber: "ORD-20260901-12ab34cd",
		TotalAmount: decimal.NewFromInt(300),
		Status:      domain.OrderStatusPendingPayment,
		Active:      true,
		CustomerID:  3,
		CreatedAt:   time.Now(),
	}
	m.order.EXPECT().Create(mock.Anything, mock.Anything).Return(order, nil)

	w := doJSON(t, r, http.MethodPost, "/api/orders", dto.CreateOrderRequest{
		CustomerID: 3,
		TicketIDs:  []string{uuid.New().String(), uuid.New().String()},
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending_payment", resp.Status)
	assert.Equal(t, "300", resp.TotalAmount)
}

func TestHandler_CreateOrder_ValidationFields(t *testing.T) {
	m, r := setupRouter(t)

	m.order.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.FieldErrors(map[string][]string{
		"ticket_ids": {"one or more tickets are unavailable"},
	}))

	w := doJSON(t, r, http.MethodPost, "/api/orders", dto.CreateOrderRequest{
		CustomerID: 3,
		TicketIDs:  []string{uuid.New().String()},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "ticket_ids")
}

func TestHandler_UpdateOrder_Complete(t *testing.T) {
	m, r := setupRouter(t)

	order := &domain.Order{
		ID:          1,
		OrderNumber: "ORD-20260901-12ab34cd",
		TotalAmount: decimal.NewFromInt(300),
		Status:      domain.OrderStatusCompleted,
		Active:      true,
		CustomerID:  3,
		CreatedAt:   time.Now(),
	}
	m.order.EXPECT().Update(mock.Anything, int64(1), mock.MatchedBy(func(p domain.OrderPatch) bool {
		return p.Status != nil && *p.Status == domain.OrderStatusCompleted
	})).Return(order, nil)

	status := "completed"
	w := doJSON(t, r, http.MethodPatch, "/api/orders/1", dto.UpdateOrderRequest{Status: &status})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Status)
}

func TestHandler_ListOrderPayments_Success(t *testing.T) {
	m, r := setupRouter(t)

	payments := []*domain.Payment{
		{ID: uuid.New().String(), OrderID: 1, Amount: decimal.NewFromInt(300), Method: domain.PaymentMethodPIX, Status: domain.PaymentStatusApproved, Active: true, CreatedAt: time.Now()},
		{ID: uuid.New().String(), OrderID: 1, Amount: decimal.NewFromInt(300), Method: domain.PaymentMethodPIX, Status: domain.PaymentStatusDeclined, Active: true, CreatedAt: time.Now()},
	}
	m.payment.EXPECT().ListByOrder(mock.Anything, int64(1)).Return(payments, nil)

	w := doJSON(t, r, http.MethodGet, "/api/orders/1/payments", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.PaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Payments ---

func TestHandler_CreatePayment_Success(t *testing.T) {
	m, r := setupRouter(t)

	payment := &domain.Payment{
		ID:        uuid.New().String(),
		OrderID:   1,
		Amount:    decimal.NewFromInt(300),
		Method:    domain.PaymentMethodPIX,
		Status:    domain.PaymentStatusPending,
		Active:    true,
		CreatedAt: time.Now(),
	}
	m.payment.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in domain.CreatePaymentInput) bool {
		return in.OrderID == 1 && in.Amount.Equal(decimal.NewFromInt(300))
	})).Return(payment, nil)

	w := doJSON(t, r, http.MethodPost, "/api/payments", dto.CreatePaymentRequest{
		OrderID: 1,
		Amount:  "300",
		Method:  "pix",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.PaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_CreatePayment_InvalidAmount(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/payments", dto.CreatePaymentRequest{
		OrderID: 1,
		Amount:  "not-a-number",
		Method:  "pix",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SettlePayment_Success(t *testing.T) {
	m, r := setupRouter(t)

	paymentID := uuid.New().String()
	txn := "gw-123"
	processed := time.Now()
	payment := &domain.Payment{
		ID:            paymentID,
		OrderID:       1,
		Amount:        decimal.NewFromInt(300),
		Method:        domain.PaymentMethodPIX,
		Status:        domain.PaymentStatusApproved,
		TransactionID: &txn,
		Active:        true,
		CreatedAt:     time.Now(),
		ProcessedAt:   &processed,
	}
	m.payment.EXPECT().Settle(mock.Anything, paymentID, domain.PaymentStatusApproved, &txn, (*string)(nil)).Return(payment, nil)

	w := doJSON(t, r, http.MethodPost, "/api/payments/"+paymentID+"/settle", dto.SettlePaymentRequest{
		Status:        "approved",
		TransactionID: &txn,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.PaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "approved", resp.Status)
	assert.NotNil(t, resp.ProcessedAt)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	m, r := setupRouter(t)

	m.event.EXPECT().GetDetails(mock.Anything, int64(10)).Return(nil, assert.AnError)

	w := doJSON(t, r, http.MethodGet, "/api/events/10", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
}
