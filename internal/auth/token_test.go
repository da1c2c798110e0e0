package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)

	token, expiresAt, err := tm.GenerateSessionToken("session-1", "user-1")
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := tm.ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "session-1", claims.SessionID)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestSessionTokenTamperedRejected(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)

	token, _, err := tm.GenerateSessionToken("session-1", "user-1")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = tm.ParseSessionToken(tampered)
	assert.Error(t, err)
}

func TestSessionTokenWrongSecretRejected(t *testing.T) {
	token, _, err := NewTokenManager("secret-a", time.Hour).GenerateSessionToken("session-1", "user-1")
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", time.Hour).ParseSessionToken(token)
	assert.Error(t, err)
}

func TestPasswordHashNeverPlaintext(t *testing.T) {
	hash, err := HashPassword("password123", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)
	assert.NoError(t, ComparePassword(hash, "password123"))
	assert.Error(t, ComparePassword(hash, "password124"))
}
