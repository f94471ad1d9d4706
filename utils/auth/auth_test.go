package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	require.NoError(t, VerifyPassword(hash, "correct horse battery"))
	assert.ErrorIs(t, VerifyPassword(hash, "wrong password"), ErrPasswordMismatch)
}

func TestHashPassword_TooShort(t *testing.T) {
	_, err := HashPassword("short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestGenerateResetToken_Unique(t *testing.T) {
	a, err := GenerateResetToken()
	require.NoError(t, err)
	b, err := GenerateResetToken()
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}

func newTestJWTManager() *JWTManager {
	return NewJWTManager(JWTConfig{
		Secret:        "test-secret",
		Expiry:        time.Hour,
		RefreshExpiry: 24 * time.Hour,
		Issuer:        "course-platform-test",
	})
}

func TestJWT_RoundTrip(t *testing.T) {
	m := newTestJWTManager()

	token, jti, err := m.GenerateAccessToken(7, "user@example.com", true, 3)
	require.NoError(t, err)
	assert.NotEmpty(t, jti)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.True(t, claims.IsSuperuser)
	assert.Equal(t, "access", claims.TokenType)
	assert.Equal(t, 3, claims.TokenVersion)
	assert.Equal(t, jti, claims.ID)
}

func TestJWT_RejectsGarbage(t *testing.T) {
	m := newTestJWTManager()

	_, err := m.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_RejectsWrongSecret(t *testing.T) {
	m := newTestJWTManager()
	other := NewJWTManager(JWTConfig{Secret: "different-secret", Expiry: time.Hour, RefreshExpiry: time.Hour, Issuer: "x"})

	token, _, err := other.GenerateAccessToken(1, "user@example.com", false, 0)
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_ExpiredToken(t *testing.T) {
	m := NewJWTManager(JWTConfig{
		Secret:        "test-secret",
		Expiry:        -time.Minute,
		RefreshExpiry: -time.Minute,
		Issuer:        "course-platform-test",
	})

	token, _, err := m.GenerateAccessToken(1, "user@example.com", false, 0)
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWT_RefreshAccessToken(t *testing.T) {
	m := newTestJWTManager()

	refresh, _, err := m.GenerateRefreshToken(7, "user@example.com", false, 1)
	require.NoError(t, err)

	access, _, err := m.RefreshAccessToken(refresh, 1)
	require.NoError(t, err)

	claims, err := m.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, "access", claims.TokenType)
	assert.Equal(t, uint(7), claims.UserID)
}

func TestJWT_RefreshRejectsAccessToken(t *testing.T) {
	m := newTestJWTManager()

	access, _, err := m.GenerateAccessToken(7, "user@example.com", false, 1)
	require.NoError(t, err)

	_, _, err = m.RefreshAccessToken(access, 1)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
