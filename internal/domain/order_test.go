package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		ok       bool
	}{
		{OrderStatusPendingPayment, OrderStatusCompleted, true},
		{OrderStatusPendingPayment, OrderStatusCancelled, true},
		{OrderStatusPendingPayment, OrderStatusRefunded, false},
		{OrderStatusCompleted, OrderStatusRefunded, true},
		{OrderStatusCompleted, OrderStatusCancelled, false},
		{OrderStatusCompleted, OrderStatusPendingPayment, false},
		{OrderStatusCancelled, OrderStatusCompleted, false},
		{OrderStatusCancelled, OrderStatusPendingPayment, false},
		{OrderStatusRefunded, OrderStatusCompleted, false},
		// same-status patches are no-ops, always allowed
		{OrderStatusPendingPayment, OrderStatusPendingPayment, true},
		{OrderStatusCancelled, OrderStatusCancelled, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestOrder_ApplyPatch_CompleteRequiresApprovedPayment(t *testing.T) {
	o := &Order{Status: OrderStatusPendingPayment, Active: true}
	status := OrderStatusCompleted

	err := o.ApplyPatch(OrderPatch{Status: &status}, false)
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Equal(t, OrderStatusPendingPayment, o.Status)

	err = o.ApplyPatch(OrderPatch{Status: &status}, true)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusCompleted, o.Status)
}

func TestOrder_ApplyPatch_InvalidTransition(t *testing.T) {
	o := &Order{Status: OrderStatusCancelled, Active: true}
	status := OrderStatusCompleted

	err := o.ApplyPatch(OrderPatch{Status: &status}, true)

	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestOrder_ApplyPatch_DeactivateCompletedRejected(t *testing.T) {
	o := &Order{Status: OrderStatusCompleted, Active: true}
	inactive := false

	err := o.ApplyPatch(OrderPatch{Active: &inactive}, true)

	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.True(t, o.Active)
}

func TestOrder_ApplyPatch_CompleteAndDeactivateSamePatch(t *testing.T) {
	// the active guard sees the status the patch just set
	o := &Order{Status: OrderStatusPendingPayment, Active: true}
	status := OrderStatusCompleted
	inactive := false

	err := o.ApplyPatch(OrderPatch{Status: &status, Active: &inactive}, true)

	require.Error(t, err)
}

func TestOrder_ApplyPatch_DeactivateCancelled(t *testing.T) {
	o := &Order{Status: OrderStatusCancelled, Active: true}
	inactive := false

	err := o.ApplyPatch(OrderPatch{Active: &inactive}, false)

	require.NoError(t, err)
	assert.False(t, o.Active)
}

func TestReservationTotal(t *testing.T) {
	available := func(price int64) *Ticket {
		return &Ticket{Price: decimal.NewFromInt(price), Status: TicketStatusAvailable}
	}

	cases := []struct {
		name      string
		ids       []string
		tickets   map[string]*Ticket
		total     string
		errKind   ErrorKind
		errSubstr string
	}{
		{
			name:    "sums ticket prices",
			ids:     []string{"t1", "t2"},
			tickets: map[string]*Ticket{"t1": available(50), "t2": available(30)},
			total:   "80",
		},
		{
			name:    "fractional prices sum exactly",
			ids:     []string{"t1", "t2"},
			tickets: map[string]*Ticket{
				"t1": {Price: decimal.RequireFromString("49.90"), Status: TicketStatusAvailable},
				"t2": {Price: decimal.RequireFromString("0.10"), Status: TicketStatusAvailable},
			},
			total: "50",
		},
		{
			name:      "missing ticket named in input order",
			ids:       []string{"absent-1", "absent-2"},
			tickets:   map[string]*Ticket{},
			errKind:   KindNotFound,
			errSubstr: "absent-1",
		},
		{
			name:      "unavailable ticket rejected",
			ids:       []string{"t1", "t2"},
			tickets:   map[string]*Ticket{"t1": available(50), "t2": {Price: decimal.NewFromInt(30), Status: TicketStatusReserved}},
			errKind:   KindValidation,
			errSubstr: "t2",
		},
		{
			name:      "duplicate id rejected",
			ids:       []string{"t1", "t1"},
			tickets:   map[string]*Ticket{"t1": available(50)},
			errKind:   KindValidation,
			errSubstr: "duplicate",
		},
		{
			name:      "duplicate wins over a later missing id",
			ids:       []string{"t1", "t1", "absent"},
			tickets:   map[string]*Ticket{"t1": available(50)},
			errKind:   KindValidation,
			errSubstr: "duplicate ticket id: t1",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			total, err := ReservationTotal(tc.ids, tc.tickets)
			if tc.errSubstr != "" {
				require.Error(t, err)
				assert.Equal(t, tc.errKind, KindOf(err))
				assert.Contains(t, err.Error(), tc.errSubstr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.total, total.String())
		})
	}
}

func TestNewOrderNumber(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	n1 := NewOrderNumber(now)
	n2 := NewOrderNumber(now)

	assert.True(t, strings.HasPrefix(n1, "ORD-20260315-"), n1)
	assert.NotEqual(t, n1, n2)
}

func TestNewTicketNumber(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	n := NewTicketNumber(42, now)

	assert.True(t, strings.HasPrefix(n, "TKT-42-20260315-"), n)
}
