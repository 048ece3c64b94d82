package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	auth := NewAuthService("test-secret", time.Hour)

	hash, err := auth.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, auth.VerifyPassword(hash, "s3cret-pass"))
	assert.ErrorIs(t, auth.VerifyPassword(hash, "wrong-pass"), ErrInvalidCredentials)
}

func TestTokenRoundTrip(t *testing.T) {
	auth := NewAuthService("test-secret", time.Hour)

	token, err := auth.GenerateToken(42)
	require.NoError(t, err)

	userID, err := auth.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestParseTokenWrongSecret(t *testing.T) {
	issuer := NewAuthService("secret-one", time.Hour)
	verifier := NewAuthService("secret-two", time.Hour)

	token, err := issuer.GenerateToken(42)
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenExpired(t *testing.T) {
	auth := NewAuthService("test-secret", -time.Minute)

	token, err := auth.GenerateToken(42)
	require.NoError(t, err)

	_, err = auth.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenGarbage(t *testing.T) {
	auth := NewAuthService("test-secret", time.Hour)

	_, err := auth.ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
