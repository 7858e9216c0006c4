package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/campuslife/activity-system/internal/core/domain"
)

// Claims is the identity payload embedded in every issued token.
type Claims struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenCodec issues and verifies signed, time-bounded identity tokens.
// Tokens are HS256 JWTs; validity is purely a function of signature and
// expiry at verification time, nothing is stored server-side.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying the user's id, username, and role, expiring
// ttl from now.
func (c *TokenCodec) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify parses and validates a token, returning the embedded claims
// unchanged. A bad signature, malformed structure, unexpected signing
// method, or expired token all yield domain.ErrInvalidToken.
func (c *TokenCodec) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
