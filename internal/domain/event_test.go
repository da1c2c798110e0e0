package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventStatus(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		startsAt time.Time
		capacity int
		booked   int
		want     EventStatus
	}{
		{"upcoming with seats", now.Add(24 * time.Hour), 100, 10, EventStatusOpen},
		{"upcoming no bookings", now.Add(time.Hour), 50, 0, EventStatusOpen},
		{"upcoming fully booked", now.Add(24 * time.Hour), 100, 100, EventStatusSoldOut},
		{"upcoming overbooked", now.Add(24 * time.Hour), 100, 120, EventStatusSoldOut},
		{"past regardless of capacity", now.Add(-time.Minute), 100, 0, EventStatusInactive},
		{"past and full", now.Add(-24 * time.Hour), 100, 100, EventStatusInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := Event{StartsAt: tt.startsAt, Capacity: tt.capacity}
			assert.Equal(t, tt.want, event.Status(tt.booked, now))
		})
	}
}

func TestEventRemaining(t *testing.T) {
	event := Event{Capacity: 10}

	assert.Equal(t, 10, event.Remaining(0))
	assert.Equal(t, 3, event.Remaining(7))
	assert.Equal(t, 0, event.Remaining(10))
	// floored at zero even if the ledger somehow exceeds capacity
	assert.Equal(t, 0, event.Remaining(15))
}
