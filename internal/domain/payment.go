package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodDebitCard    PaymentMethod = "debit_card"
	PaymentMethodPIX          PaymentMethod = "pix"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodPIX, PaymentMethodBankTransfer:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDeclined PaymentStatus = "declined"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusApproved, PaymentStatusDeclined, PaymentStatusRefunded:
		return true
	}
	return false
}

// paymentTransitions: a payment is created pending, the gateway outcome
// settles it once, and only an approved payment can later be refunded.
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending:  {PaymentStatusApproved, PaymentStatusDeclined},
	PaymentStatusApproved: {PaymentStatusRefunded},
}

func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range paymentTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

// Payment ids are UUIDs, like tickets. Orders may hold several payments
// (retries); the order counts as paid once one is approved and active.
type Payment struct {
	ID              string          `json:"id"`
	OrderID         int64           `json:"order_id"`
	Amount          decimal.Decimal `json:"amount"`
	Method          PaymentMethod   `json:"method"`
	Status          PaymentStatus   `json:"status"`
	TransactionID   *string         `json:"transaction_id,omitempty"`
	GatewayResponse *string         `json:"gateway_response,omitempty"`
	Active          bool            `json:"active"`
	CreatedAt       time.Time       `json:"created_at"`
	ProcessedAt     *time.Time      `json:"processed_at,omitempty"`
}

// Settle records the gateway outcome. Approving or declining stamps the
// processing time; an illegal transition is a validation failure.
func (p *Payment) Settle(next PaymentStatus, transactionID, gatewayResponse *string, now time.Time) error {
	if !next.Valid() {
		return Validationf("unknown payment status: %s", next)
	}
	if !p.Status.CanTransitionTo(next) {
		return Validationf("invalid payment status transition from %s to %s", p.Status, next)
	}

	p.Status = next
	if transactionID != nil {
		p.TransactionID = transactionID
	}
	if gatewayResponse != nil {
		p.GatewayResponse = gatewayResponse
	}
	if p.ProcessedAt == nil {
		p.ProcessedAt = &now
	}
	return nil
}

type CreatePaymentInput struct {
	OrderID         int64
	Amount          decimal.Decimal
	Method          PaymentMethod
	TransactionID   *string
	GatewayResponse *string
}
