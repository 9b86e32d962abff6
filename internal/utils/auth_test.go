package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	tok, err := NewAdminToken("secret", 60)
	require.NoError(t, err)
	assert.NotEmpty(t, tok.Token)
	assert.WithinDuration(t, time.Now().UTC().Add(60*time.Minute), tok.Exp, 5*time.Second)

	assert.NoError(t, VerifyAdminToken("secret", tok.Token))
	assert.ErrorIs(t, VerifyAdminToken("wrong", tok.Token), ErrInvalidToken)
	assert.ErrorIs(t, VerifyAdminToken("secret", "not-a-jwt"), ErrInvalidToken)
}

func TestVerifyAdminToken_RejectsExpired(t *testing.T) {
	claims := jwt.MapClaims{
		"sub":  "admin",
		"role": "ADMIN",
		"exp":  time.Now().UTC().Add(-time.Minute).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	assert.ErrorIs(t, VerifyAdminToken("secret", signed), ErrInvalidToken)
}

func TestVerifyAdminToken_RejectsWrongRole(t *testing.T) {
	claims := jwt.MapClaims{
		"sub":  "somebody",
		"role": "USER",
		"exp":  time.Now().UTC().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	assert.ErrorIs(t, VerifyAdminToken("secret", signed), ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2", bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(hash, "hunter2"))
	assert.False(t, VerifyPassword(hash, "hunter3"))
	assert.False(t, VerifyPassword("not-a-hash", "hunter2"))
}
