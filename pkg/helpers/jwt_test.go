package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	m := &JWTManager{AccessSecret: []byte("test-secret"), AccessTTL: time.Hour}

	token, exp, err := m.SignAccessToken("acct-1", "sess-1")
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	claims, err := m.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "acct-1", claims.AccountID)
	assert.Equal(t, "sess-1", claims.SessionID)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	a := &JWTManager{AccessSecret: []byte("secret-a"), AccessTTL: time.Hour}
	b := &JWTManager{AccessSecret: []byte("secret-b"), AccessTTL: time.Hour}

	token, _, err := a.SignAccessToken("acct-1", "sess-1")
	require.NoError(t, err)

	_, err = b.ParseAccessToken(token)
	assert.Error(t, err)
}

func TestJWTRejectsExpired(t *testing.T) {
	m := &JWTManager{AccessSecret: []byte("test-secret"), AccessTTL: -time.Minute}

	token, _, err := m.SignAccessToken("acct-1", "sess-1")
	require.NoError(t, err)

	_, err = m.ParseAccessToken(token)
	assert.Error(t, err)
}
