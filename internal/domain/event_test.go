package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 10, d, 0, 0, 0, 0, time.UTC)
	}

	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"identical", day(1), day(5), day(1), day(5), true},
		{"contained", day(2), day(3), day(1), day(5), true},
		{"contains", day(1), day(5), day(2), day(3), true},
		{"partial left", day(1), day(3), day(2), day(5), true},
		{"partial right", day(2), day(5), day(1), day(3), true},
		{"touching end", day(1), day(3), day(3), day(5), true},
		{"touching start", day(3), day(5), day(1), day(3), true},
		{"disjoint before", day(1), day(2), day(3), day(5), false},
		{"disjoint after", day(6), day(8), day(3), day(5), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
		})
	}
}

func TestEvent_Deletable(t *testing.T) {
	assert.True(t, (&Event{Status: EventStatusDraft}).Deletable())
	assert.True(t, (&Event{Status: EventStatusCancelled}).Deletable())
	assert.False(t, (&Event{Status: EventStatusPublished}).Deletable())
	assert.False(t, (&Event{Status: EventStatusCompleted}).Deletable())
}

func TestEventPatch_TouchesSchedule(t *testing.T) {
	start := time.Now()
	venueID := int64(3)
	status := EventStatusPublished

	assert.True(t, EventPatch{StartDate: &start}.TouchesSchedule())
	assert.True(t, EventPatch{VenueID: &venueID}.TouchesSchedule())
	assert.False(t, EventPatch{Status: &status}.TouchesSchedule())
	assert.False(t, EventPatch{}.TouchesSchedule())
}
