package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/event-booking/internal/domain"
)

func newEventFixture(t *testing.T) (*EventService, *memStore, *recordingDispatcher) {
	t.Helper()
	store := newMemStore()
	dispatcher := &recordingDispatcher{}
	svc := NewEventService(EventDependencies{
		EventRepo:   eventStore{store},
		CommentRepo: commentStore{store},
		Dispatcher:  dispatcher,
	})
	return svc, store, dispatcher
}

func TestCreateEventValidation(t *testing.T) {
	svc, store, _ := newEventFixture(t)
	future := time.Now().Add(24 * time.Hour)

	tests := []struct {
		name  string
		input EventCreateInput
		field string
	}{
		{"empty title", EventCreateInput{Description: "d", StartsAt: future, Capacity: 10}, "title"},
		{"title too long", EventCreateInput{Title: strings.Repeat("x", 121), Description: "d", StartsAt: future, Capacity: 10}, "title"},
		{"empty description", EventCreateInput{Title: "t", StartsAt: future, Capacity: 10}, "description"},
		{"missing date", EventCreateInput{Title: "t", Description: "d", Capacity: 10}, "starts_at"},
		{"zero capacity", EventCreateInput{Title: "t", Description: "d", StartsAt: future}, "capacity"},
		{"capacity too large", EventCreateInput{Title: "t", Description: "d", StartsAt: future, Capacity: 100001}, "capacity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateEvent(context.Background(), "user-1", tt.input)
			de := domainErr(t, err)
			assert.Equal(t, "VALIDATION_FAILED", de.Code)
			assert.Contains(t, de.Details, tt.field)
		})
	}
	assert.Empty(t, store.events)
}

func TestCreateEventPersistsTrimmed(t *testing.T) {
	svc, store, dispatcher := newEventFixture(t)
	future := time.Now().Add(24 * time.Hour)

	view, err := svc.CreateEvent(context.Background(), "user-1", EventCreateInput{
		Title:       "  Campus Music Night  ",
		Description: " Live bands. ",
		StartsAt:    future,
		Capacity:    100,
	})
	require.NoError(t, err)
	assert.Equal(t, "Campus Music Night", view.Event.Title)
	assert.Equal(t, "Live bands.", view.Event.Description)
	require.NotNil(t, view.Event.OwnerID)
	assert.Equal(t, "user-1", *view.Event.OwnerID)
	assert.Len(t, store.events, 1)
	assert.Len(t, dispatcher.published, 1)
}

func TestCreateEventTitleLengthCountsCharacters(t *testing.T) {
	svc, store, _ := newEventFixture(t)
	future := time.Now().Add(24 * time.Hour)

	// 120 characters, 240 bytes; must pass the title bound
	_, err := svc.CreateEvent(context.Background(), "user-1", EventCreateInput{
		Title:       strings.Repeat("é", 120),
		Description: "d",
		StartsAt:    future,
		Capacity:    10,
	})
	require.NoError(t, err)
	assert.Len(t, store.events, 1)
}

func TestCreateEventViewUsesServiceClock(t *testing.T) {
	svc, _, _ := newEventFixture(t)
	frozen := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return frozen }

	view, err := svc.CreateEvent(context.Background(), "user-1", EventCreateInput{
		Title:       "retrospective",
		Description: "d",
		StartsAt:    frozen.Add(-time.Hour),
		Capacity:    10,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusInactive, view.Status)
	assert.Equal(t, 10, view.Remaining)

	view, err = svc.CreateEvent(context.Background(), "user-1", EventCreateInput{
		Title:       "upcoming",
		Description: "d",
		StartsAt:    frozen.Add(time.Hour),
		Capacity:    10,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusOpen, view.Status)
}

func TestListEventsDerivedStatusAndOrder(t *testing.T) {
	svc, store, _ := newEventFixture(t)
	now := time.Now()

	past := addEvent(store, now.Add(-48*time.Hour), 10)
	full := addEvent(store, now.Add(24*time.Hour), 2)
	open := addEvent(store, now.Add(48*time.Hour), 10)
	store.bookings = append(store.bookings,
		domain.Booking{ID: "b1", EventID: full.ID, UserID: "user-1", Quantity: 2, CreatedAt: now})

	views, err := svc.ListEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 3)

	// ascending by date
	assert.Equal(t, past.ID, views[0].Event.ID)
	assert.Equal(t, full.ID, views[1].Event.ID)
	assert.Equal(t, open.ID, views[2].Event.ID)

	assert.Equal(t, domain.EventStatusInactive, views[0].Status)
	assert.Equal(t, domain.EventStatusSoldOut, views[1].Status)
	assert.Equal(t, 0, views[1].Remaining)
	assert.Equal(t, domain.EventStatusOpen, views[2].Status)
	assert.Equal(t, 10, views[2].Remaining)
}

func TestListEventsIdempotentWithoutWrites(t *testing.T) {
	svc, store, _ := newEventFixture(t)
	addEvent(store, time.Now().Add(24*time.Hour), 10)
	addEvent(store, time.Now().Add(48*time.Hour), 20)

	first, err := svc.ListEvents(context.Background())
	require.NoError(t, err)
	second, err := svc.ListEvents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetEventNotFound(t *testing.T) {
	svc, _, _ := newEventFixture(t)

	_, _, err := svc.GetEvent(context.Background(), "missing")
	de := domainErr(t, err)
	assert.Equal(t, "NOT_FOUND", de.Code)
}

func TestGetEventCommentsNewestFirst(t *testing.T) {
	svc, store, _ := newEventFixture(t)
	event := addEvent(store, time.Now().Add(24*time.Hour), 10)
	base := time.Now()
	store.comments = append(store.comments,
		domain.Comment{ID: "c1", EventID: event.ID, UserID: "user-1", Body: "first", CreatedAt: base.Add(-time.Hour)},
		domain.Comment{ID: "c2", EventID: event.ID, UserID: "user-1", Body: "second", CreatedAt: base},
	)

	view, comments, err := svc.GetEvent(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, event.ID, view.Event.ID)
	require.Len(t, comments, 2)
	assert.Equal(t, "second", comments[0].Body)
	assert.Equal(t, "first", comments[1].Body)
}
