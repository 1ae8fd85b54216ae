package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneywise/internal/domain"
)

const testSecret = "0123456789abcdef"

func TestSessionTokenRoundTrip(t *testing.T) {
	tok, err := GenerateSessionToken("abc", domain.ViewParent, testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseSessionToken(tok, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "abc", claims.SessionID)
	assert.Equal(t, domain.ViewParent, claims.View)
}

func TestSessionTokenRejected(t *testing.T) {
	tok, err := GenerateSessionToken("abc", domain.ViewChild, testSecret, time.Hour)
	require.NoError(t, err)
	_, err = ParseSessionToken(tok, "another-secret-value")
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := GenerateSessionToken("abc", domain.ViewChild, testSecret, -time.Minute)
	require.NoError(t, err)
	_, err = ParseSessionToken(expired, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)

	badView, err := GenerateSessionToken("abc", domain.View("admin"), testSecret, time.Hour)
	require.NoError(t, err)
	_, err = ParseSessionToken(badView, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseSessionToken("not-a-token", testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
