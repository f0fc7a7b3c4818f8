package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to PaymentStatus
		ok       bool
	}{
		{PaymentStatusPending, PaymentStatusApproved, true},
		{PaymentStatusPending, PaymentStatusDeclined, true},
		{PaymentStatusPending, PaymentStatusRefunded, false},
		{PaymentStatusApproved, PaymentStatusRefunded, true},
		{PaymentStatusApproved, PaymentStatusDeclined, false},
		{PaymentStatusDeclined, PaymentStatusApproved, false},
		{PaymentStatusDeclined, PaymentStatusRefunded, false},
		{PaymentStatusRefunded, PaymentStatusApproved, false},
		{PaymentStatusPending, PaymentStatusPending, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestPayment_Settle(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	txn := "txn-1"

	p := &Payment{ID: "p1", Status: PaymentStatusPending}
	err := p.Settle(PaymentStatusApproved, &txn, nil, now)

	require.NoError(t, err)
	assert.Equal(t, PaymentStatusApproved, p.Status)
	require.NotNil(t, p.TransactionID)
	assert.Equal(t, "txn-1", *p.TransactionID)
	require.NotNil(t, p.ProcessedAt)
	assert.Equal(t, now, *p.ProcessedAt)
}

func TestPayment_Settle_InvalidTransition(t *testing.T) {
	p := &Payment{ID: "p1", Status: PaymentStatusDeclined}

	err := p.Settle(PaymentStatusRefunded, nil, nil, time.Now())

	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Equal(t, PaymentStatusDeclined, p.Status)
}

func TestTicket_MarkUsed(t *testing.T) {
	now := time.Now().UTC()

	sold := &Ticket{ID: "t1", Status: TicketStatusSold}
	require.NoError(t, sold.MarkUsed(now))
	assert.True(t, sold.Used)
	assert.Equal(t, TicketStatusUsed, sold.Status)
	require.NotNil(t, sold.UsedAt)

	// second use must fail
	err := sold.MarkUsed(now)
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))

	reserved := &Ticket{ID: "t2", Status: TicketStatusReserved}
	err = reserved.MarkUsed(now)
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
}
