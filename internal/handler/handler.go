package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wenderson1/VibraTicket/internal/domain"
	"github.com/wenderson1/VibraTicket/internal/handler/dto"
)

type VenueSvc interface {
	Create(ctx context.Context, input domain.CreateVenueInput) (*domain.Venue, error)
	Update(ctx context.Context, id int64, patch domain.VenuePatch) (*domain.Venue, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

type AffiliateSvc interface {
	Create(ctx context.Context, input domain.CreateAffiliateInput) (*domain.Affiliate, error)
	Update(ctx context.Context, id int64, patch domain.AffiliatePatch) (*domain.Affiliate, error)
	Deactivate(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Affiliate, error)
	GetActiveByDocument(ctx context.Context, document string) (*domain.Affiliate, error)
}

type CustomerSvc interface {
	Create(ctx context.Context, input domain.CreateCustomerInput) (*domain.Customer, error)
	Update(ctx context.Context, id int64, patch domain.CustomerPatch) (*domain.Customer, error)
	Deactivate(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetActiveByEmail(ctx context.Context, email string) (*domain.Customer, error)
	GetActiveByDocument(ctx context.Context, document string) (*domain.Customer, error)
}

type EventSvc interface {
	Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	Update(ctx context.Context, id int64, patch domain.EventPatch) (*domain.Event, error)
	Delete(ctx context.Context, id int64) error
	GetDetails(ctx context.Context, id int64) (*domain.EventDetails, error)
	GetDetailsByTicketID(ctx context.Context, ticketID string) (*domain.EventDetails, error)
}

type SectorSvc interface {
	Create(ctx context.Context, input domain.CreateSectorInput) (*domain.Sector, error)
	Update(ctx context.Context, id int64, patch domain.SectorPatch) (*domain.Sector, error)
	GetByID(ctx context.Context, id int64) (*domain.Sector, error)
}

type TicketSvc interface {
	Issue(ctx context.Context, input domain.IssueTicketsInput) ([]*domain.Ticket, error)
	Use(ctx context.Context, id string) (*domain.Ticket, error)
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
}

type OrderSvc interface {
	Create(ctx context.Context, input domain.CreateOrderInput) (*domain.Order, error)
	Update(ctx context.Context, id int64, patch domain.OrderPatch) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
}

type PaymentSvc interface {
	Create(ctx context.Context, input domain.CreatePaymentInput) (*domain.Payment, error)
	Settle(ctx context.Context, id string, status domain.PaymentStatus, transactionID, gatewayResponse *string) (*domain.Payment, error)
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	ListByOrder(ctx context.Context, orderID int64) ([]*domain.Payment, error)
}

type Handler struct {
	venueService     VenueSvc
	affiliateService AffiliateSvc
	customerService  CustomerSvc
	eventService     EventSvc
	sectorService    SectorSvc
	ticketService    TicketSvc
	orderService     OrderSvc
	paymentService   PaymentSvc
}

func NewHandler(
	venueService VenueSvc,
	affiliateService AffiliateSvc,
	customerService CustomerSvc,
	eventService EventSvc,
	sectorService SectorSvc,
	ticketService TicketSvc,
	orderService OrderSvc,
	paymentService PaymentSvc,
) *Handler {
	return &Handler{
		venueService:     venueService,
		affiliateService: affiliateService,
		customerService:  customerService,
		eventService:     eventService,
		sectorService:    sectorService,
		ticketService:    ticketService,
		orderService:     orderService,
		paymentService:   paymentService,
	}
}

// pathID parses a numeric path parameter, answering 400 itself on garbage.
func pathID(c *ginext.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}

// pathUUID parses a UUID path parameter the same way.
func pathUUID(c *ginext.Context, name string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return "", false
	}
	return id, true
}

// handleError translates the domain error taxonomy to HTTP. Anything that
// is not a classified domain error is reported as a bare 500 so storage
// details never reach the client.
func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var derr *domain.Error
	if !errors.As(err, &derr) {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}

	resp := dto.ErrorResponse{Error: derr.Message, Fields: derr.Fields}
	switch derr.Kind {
	case domain.KindNotFound:
		c.JSON(http.StatusNotFound, resp)
	case domain.KindConflict:
		c.JSON(http.StatusConflict, resp)
	case domain.KindValidation:
		c.JSON(http.StatusBadRequest, resp)
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
