// Package utils provides helper functions for admin session tokens and
// password verification.
package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AdminToken is a signed admin session token along with its expiry. The
// token travels in an HTTP-only cookie; there is exactly one admin
// identity, so the only claims that matter are the role and expiry.
type AdminToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// ErrInvalidToken is returned by VerifyAdminToken for any token that does
// not parse, is not HS256-signed with our secret, has expired, or does
// not carry the admin role.
var ErrInvalidToken = errors.New("invalid or expired session")

// NewAdminToken builds and signs an HS256 JWT for the admin session with
// the given TTL in minutes. Claims: subject, role, expiration, issued at.
func NewAdminToken(secret string, ttlMin int) (AdminToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":  "admin",
		"role": "ADMIN",
		"exp":  exp.Unix(),
		"iat":  time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AdminToken{}, err
	}
	return AdminToken{Token: signed, Exp: exp}, nil
}

// VerifyAdminToken parses and validates a raw admin session token. It
// accepts only HS256 tokens signed with secret that carry the ADMIN role.
func VerifyAdminToken(secret, raw string) error {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return ErrInvalidToken
	}
	if role, _ := claims["role"].(string); role != "ADMIN" {
		return ErrInvalidToken
	}
	return nil
}

// VerifyPassword safely compares a bcrypt hash and a plain password.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// HashPassword returns the bcrypt hash of plain using the given cost.
// Used by the hash generation helper and tests; the server itself only
// ever verifies.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
