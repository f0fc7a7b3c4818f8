package dto

// Request dates are RFC3339 strings and money fields are decimal strings;
// parsing happens in the handlers so binding errors and format errors read
// the same way to the client.

type CreateVenueRequest struct {
	Name      string   `json:"name" binding:"required"`
	Address   string   `json:"address" binding:"required"`
	City      string   `json:"city" binding:"required"`
	State     string   `json:"state" binding:"required"`
	ZipCode   *string  `json:"zip_code"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Capacity  int      `json:"capacity" binding:"required,gt=0"`
}

type UpdateVenueRequest struct {
	Name      *string  `json:"name"`
	Address   *string  `json:"address"`
	City      *string  `json:"city"`
	State     *string  `json:"state"`
	ZipCode   *string  `json:"zip_code"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Capacity  *int     `json:"capacity"`
}

type CreateAffiliateRequest struct {
	Name                  string  `json:"name" binding:"required"`
	FullName              string  `json:"full_name" binding:"required"`
	Document              string  `json:"document" binding:"required"`
	Email                 *string `json:"email"`
	Phone                 *string `json:"phone"`
	BankName              *string `json:"bank_name"`
	BankAccount           *string `json:"bank_account"`
	BankBranch            *string `json:"bank_branch"`
	DefaultCommissionRate string  `json:"default_commission_rate"`
}

type UpdateAffiliateRequest struct {
	Name                  *string `json:"name"`
	FullName              *string `json:"full_name"`
	Document              *string `json:"document"`
	Email                 *string `json:"email"`
	Phone                 *string `json:"phone"`
	BankName              *string `json:"bank_name"`
	BankAccount           *string `json:"bank_account"`
	BankBranch            *string `json:"bank_branch"`
	DefaultCommissionRate *string `json:"default_commission_rate"`
	Active                *bool   `json:"active"`
}

type CreateCustomerRequest struct {
	FullName  string  `json:"full_name" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Document  string  `json:"document" binding:"required"`
	Phone     *string `json:"phone"`
	BirthDate string  `json:"birth_date" binding:"required"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	ZipCode   *string `json:"zip_code"`
}

type UpdateCustomerRequest struct {
	FullName  *string `json:"full_name"`
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Document  *string `json:"document"`
	Phone     *string `json:"phone"`
	BirthDate *string `json:"birth_date"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	ZipCode   *string `json:"zip_code"`
	Active    *bool   `json:"active"`
}

type CreateEventRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     string  `json:"end_date" binding:"required"`
	BannerURL   *string `json:"banner_url"`
	MinimumAge  int     `json:"minimum_age"`
	VenueID     int64   `json:"venue_id" binding:"required,gt=0"`
	AffiliateID int64   `json:"affiliate_id" binding:"required,gt=0"`
}

type UpdateEventRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Status      *string `json:"status"`
	BannerURL   *string `json:"banner_url"`
	MinimumAge  *int    `json:"minimum_age"`
	VenueID     *int64  `json:"venue_id"`
	AffiliateID *int64  `json:"affiliate_id"`
}

type CreateSectorRequest struct {
	Name             string `json:"name" binding:"required"`
	Price            string `json:"price" binding:"required"`
	Capacity         int    `json:"capacity" binding:"required,gt=0"`
	AvailableTickets *int   `json:"available_tickets"`
	EventID          int64  `json:"event_id" binding:"required,gt=0"`
}

type UpdateSectorRequest struct {
	Name             *string `json:"name"`
	Price            *string `json:"price"`
	Capacity         *int    `json:"capacity"`
	AvailableTickets *int    `json:"available_tickets"`
}

type IssueTicketsRequest struct {
	SectorID int64 `json:"sector_id" binding:"required,gt=0"`
	Quantity int   `json:"quantity" binding:"required,gt=0"`
}

type CreateOrderRequest struct {
	CustomerID int64    `json:"customer_id" binding:"required,gt=0"`
	TicketIDs  []string `json:"ticket_ids" binding:"required,min=1,dive,uuid"`
}

type UpdateOrderRequest struct {
	Status *string `json:"status"`
	Active *bool   `json:"active"`
}

type CreatePaymentRequest struct {
	OrderID         int64   `json:"order_id" binding:"required,gt=0"`
	Amount          string  `json:"amount" binding:"required"`
	Method          string  `json:"method" binding:"required"`
	TransactionID   *string `json:"transaction_id"`
	GatewayResponse *string `json:"gateway_response"`
}

type SettlePaymentRequest struct {
	Status          string  `json:"status" binding:"required"`
	TransactionID   *string `json:"transaction_id"`
	GatewayResponse *string `json:"gateway_response"`
}
