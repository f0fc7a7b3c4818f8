package dto

import (
	"time"

	"github.com/wenderson1/VibraTicket/internal/domain"
)

// Money travels as decimal strings so clients never see float rounding.

type VenueResponse struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	ZipCode   *string  `json:"zip_code,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Capacity  int      `json:"capacity"`
}

type AffiliateResponse struct {
	ID                    int64   `json:"id"`
	Name                  string  `json:"name"`
	FullName              string  `json:"full_name"`
	Document              string  `json:"document"`
	Email                 *string `json:"email,omitempty"`
	Phone                 *string `json:"phone,omitempty"`
	BankName              *string `json:"bank_name,omitempty"`
	BankAccount           *string `json:"bank_account,omitempty"`
	BankBranch            *string `json:"bank_branch,omitempty"`
	DefaultCommissionRate string  `json:"default_commission_rate"`
	Active                bool    `json:"active"`
	CreatedAt             string  `json:"created_at"`
}

type CustomerResponse struct {
	ID        int64   `json:"id"`
	FullName  string  `json:"full_name"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Document  string  `json:"document"`
	Phone     *string `json:"phone,omitempty"`
	BirthDate string  `json:"birth_date"`
	Address   *string `json:"address,omitempty"`
	City      *string `json:"city,omitempty"`
	State     *string `json:"state,omitempty"`
	ZipCode   *string `json:"zip_code,omitempty"`
	Active    bool    `json:"active"`
	CreatedAt string  `json:"created_at"`
}

type EventResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Status      string  `json:"status"`
	BannerURL   *string `json:"banner_url,omitempty"`
	MinimumAge  int     `json:"minimum_age"`
	VenueID     int64   `json:"venue_id"`
	AffiliateID int64   `json:"affiliate_id"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   *string `json:"updated_at,omitempty"`
}

type EventDetailsResponse struct {
	Event     EventResponse           `json:"event"`
	Venue     domain.VenueSummary     `json:"venue"`
	Affiliate domain.AffiliateSummary `json:"affiliate"`
}

type SectorResponse struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Price            string `json:"price"`
	Capacity         int    `json:"capacity"`
	AvailableTickets int    `json:"available_tickets"`
	EventID          int64  `json:"event_id"`
}

type TicketResponse struct {
	ID           string  `json:"id"`
	TicketNumber string  `json:"ticket_number"`
	Price        string  `json:"price"`
	Status       string  `json:"status"`
	EventID      int64   `json:"event_id"`
	SectorID     int64   `json:"sector_id"`
	CustomerID   *int64  `json:"customer_id,omitempty"`
	OrderID      *int64  `json:"order_id,omitempty"`
	Used         bool    `json:"used"`
	UsedAt       *string `json:"used_at,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

type OrderResponse struct {
	ID          int64  `json:"id"`
	OrderNumber string `json:"order_number"`
	TotalAmount string `json:"total_amount"`
	Status      string `json:"status"`
	Active      bool   `json:"active"`
	CustomerID  int64  `json:"customer_id"`
	CreatedAt   string `json:"created_at"`
}

type PaymentResponse struct {
	ID              string  `json:"id"`
	OrderID         int64   `json:"order_id"`
	Amount          string  `json:"amount"`
	Method          string  `json:"method"`
	Status          string  `json:"status"`
	TransactionID   *string `json:"transaction_id,omitempty"`
	GatewayResponse *string `json:"gateway_response,omitempty"`
	Active          bool    `json:"active"`
	CreatedAt       string  `json:"created_at"`
	ProcessedAt     *string `json:"processed_at,omitempty"`
}

type ErrorResponse struct {
	Error  string              `json:"error"`
	Fields map[string][]string `json:"fields,omitempty"`
}

func ToVenueResponse(v *domain.Venue) VenueResponse {
	return VenueResponse{
		ID:        v.ID,
		Name:      v.Name,
		Address:   v.Address,
		City:      v.City,
		State:     v.State,
		ZipCode:   v.ZipCode,
		Latitude:  v.Latitude,
		Longitude: v.Longitude,
		Capacity:  v.Capacity,
	}
}

func ToAffiliateResponse(a *domain.Affiliate) AffiliateResponse {
	return AffiliateResponse{
		ID:                    a.ID,
		Name:                  a.Name,
		FullName:              a.FullName,
		Document:              a.Document,
		Email:                 a.Email,
		Phone:                 a.Phone,
		BankName:              a.BankName,
		BankAccount:           a.BankAccount,
		BankBranch:            a.BankBranch,
		DefaultCommissionRate: a.DefaultCommissionRate.String(),
		Active:                a.Active,
		CreatedAt:             a.CreatedAt.Format(time.RFC3339),
	}
}

func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		FullName:  c.FullName,
		Name:      c.Name,
		Email:     c.Email,
		Document:  c.Document,
		Phone:     c.Phone,
		BirthDate: c.BirthDate.Format("2006-01-02"),
		Address:   c.Address,
		City:      c.City,
		State:     c.State,
		ZipCode:   c.ZipCode,
		Active:    c.Active,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventResponse(e *domain.Event) EventResponse {
	resp := EventResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		StartDate:   e.StartDate.Format(time.RFC3339),
		EndDate:     e.EndDate.Format(time.RFC3339),
		Status:      string(e.Status),
		BannerURL:   e.BannerURL,
		MinimumAge:  e.MinimumAge,
		VenueID:     e.VenueID,
		AffiliateID: e.AffiliateID,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
	if e.UpdatedAt != nil {
		updated := e.UpdatedAt.Format(time.RFC3339)
		resp.UpdatedAt = &updated
	}
	return resp
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	return EventDetailsResponse{
		Event:     ToEventResponse(&d.Event),
		Venue:     d.Venue,
		Affiliate: d.Affiliate,
	}
}

func ToSectorResponse(s *domain.Sector) SectorResponse {
	return SectorResponse{
		ID:               s.ID,
		Name:             s.Name,
		Price:            s.Price.String(),
		Capacity:         s.Capacity,
		AvailableTickets: s.AvailableTickets,
		EventID:          s.EventID,
	}
}

func ToTicketResponse(t *domain.Ticket) TicketResponse {
	resp := TicketResponse{
		ID:           t.ID,
		TicketNumber: t.TicketNumber,
		Price:        t.Price.String(),
		Status:       string(t.Status),
		EventID:      t.EventID,
		SectorID:     t.SectorID,
		CustomerID:   t.CustomerID,
		OrderID:      t.OrderID,
		Used:         t.Used,
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
	}
	if t.UsedAt != nil {
		used := t.UsedAt.Format(time.RFC3339)
		resp.UsedAt = &used
	}
	return resp
}

func ToOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		TotalAmount: o.TotalAmount.String(),
		Status:      string(o.Status),
		Active:      o.Active,
		CustomerID:  o.CustomerID,
		CreatedAt:   o.CreatedAt.Format(time.RFC3339),
	}
}

func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:              p.ID,
		OrderID:         p.OrderID,
		Amount:          p.Amount.String(),
		Method:          string(p.Method),
		Status:          string(p.Status),
		TransactionID:   p.TransactionID,
		GatewayResponse: p.GatewayResponse,
		Active:          p.Active,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
	}
	if p.ProcessedAt != nil {
		processed := p.ProcessedAt.Format(time.RFC3339)
		resp.ProcessedAt = &processed
	}
	return resp
}
