package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/event-booking/internal/events"
)

func newCommentFixture(t *testing.T) (*CommentService, *memStore, *recordingDispatcher) {
	t.Helper()
	store := newMemStore()
	dispatcher := &recordingDispatcher{}
	svc := NewCommentService(CommentDependencies{
		EventRepo:   eventStore{store},
		CommentRepo: commentStore{store},
		Dispatcher:  dispatcher,
	})
	return svc, store, dispatcher
}

func TestPostCommentLengthBoundary(t *testing.T) {
	svc, store, _ := newCommentFixture(t)
	event := addEvent(store, time.Now().Add(24*time.Hour), 10)

	_, err := svc.PostComment(context.Background(), "user-1", event.ID, strings.Repeat("x", 501))
	de := domainErr(t, err)
	assert.Equal(t, "VALIDATION_FAILED", de.Code)
	assert.Empty(t, store.comments)

	comment, err := svc.PostComment(context.Background(), "user-1", event.ID, strings.Repeat("x", 500))
	require.NoError(t, err)
	assert.Len(t, comment.Body, 500)
	assert.Len(t, store.comments, 1)
}

func TestPostCommentLengthCountsCharactersNotBytes(t *testing.T) {
	svc, store, _ := newCommentFixture(t)
	event := addEvent(store, time.Now().Add(24*time.Hour), 10)

	// 500 characters but 1000 bytes; must be accepted
	_, err := svc.PostComment(context.Background(), "user-1", event.ID, strings.Repeat("é", 500))
	require.NoError(t, err)
	assert.Len(t, store.comments, 1)

	_, err = svc.PostComment(context.Background(), "user-1", event.ID, strings.Repeat("é", 501))
	de := domainErr(t, err)
	assert.Equal(t, "VALIDATION_FAILED", de.Code)
}

func TestPostCommentEmptyBody(t *testing.T) {
	svc, store, _ := newCommentFixture(t)
	event := addEvent(store, time.Now().Add(24*time.Hour), 10)

	for _, body := range []string{"", "   "} {
		_, err := svc.PostComment(context.Background(), "user-1", event.ID, body)
		de := domainErr(t, err)
		assert.Equal(t, "VALIDATION_FAILED", de.Code)
	}
	assert.Empty(t, store.comments)
}

func TestPostCommentUnknownEvent(t *testing.T) {
	svc, _, _ := newCommentFixture(t)

	_, err := svc.PostComment(context.Background(), "user-1", "missing", "hello")
	de := domainErr(t, err)
	assert.Equal(t, "NOT_FOUND", de.Code)
}

func TestPostCommentPublishesEvent(t *testing.T) {
	svc, store, dispatcher := newCommentFixture(t)
	event := addEvent(store, time.Now().Add(24*time.Hour), 10)

	comment, err := svc.PostComment(context.Background(), "user-1", event.ID, "see you there")
	require.NoError(t, err)

	require.Len(t, dispatcher.published, 1)
	published := dispatcher.published[0]
	assert.Equal(t, events.CommentPosted, published.Type)
	payload, ok := published.Payload.(events.CommentPostedPayload)
	require.True(t, ok)
	assert.Equal(t, comment.ID, payload.CommentID)
	assert.Equal(t, "see you there", payload.BodyPreview)
}
