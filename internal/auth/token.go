package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL applies when no lifetime is configured.
const DefaultTokenTTL = 30 * time.Minute

type Claims struct {
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies time-limited identity tokens. The secret and
// default lifetime come from configuration, not package state.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret []byte, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenCodec{secret: secret, ttl: ttl}
}

// Issue signs an HS256 token for the given subject. A positive ttl overrides
// the codec default.
func (c *TokenCodec) Issue(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = c.ttl
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return token.SignedString(c.secret)
}

// Verify decodes the token and checks signature and expiry. Malformed,
// expired or tampered tokens yield nil; bad tokens are expected traffic,
// not errors.
func (c *TokenCodec) Verify(tokenStr string) *Claims {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return nil
	}
	return claims
}
