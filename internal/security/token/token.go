// Package token issues and verifies the bearer credentials handed out at
// login: compact HS256 JWTs carrying the identity claims the rest of the API
// trusts for the lifetime of the token. Tokens are stateless; nothing is kept
// server-side and nothing can be revoked before expiry.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/markobarraza/cafe-marketplace/internal/core/domain"
)

// Verification failures, one per distinguishable cause. The HTTP layer
// collapses all three into the same 401 so callers cannot probe which check
// failed; logs keep the distinction.
var (
	ErrMalformed        = errors.New("token malformed")
	ErrInvalidSignature = errors.New("token signature invalid")
	ErrExpired          = errors.New("token expired")
)

// Claims is the signed payload. Field names are the wire contract the
// original API established: id, email, rol, plus registered iat/exp.
type Claims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"rol"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies tokens with a process-wide secret injected at
// startup. It holds no mutable state, so a single instance is shared freely.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl == 0 {
		ttl = time.Hour
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// TTL returns the lifetime stamped on issued tokens.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue signs a token for the user, valid from now until now+ttl.
func (i *Issuer) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify checks the token and returns its claims. Signature integrity is
// checked before the payload is trusted; expiry after. The error is always
// exactly one of ErrMalformed, ErrInvalidSignature, ErrExpired.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		default:
			return nil, ErrMalformed
		}
	}
	if !parsed.Valid {
		return nil, ErrInvalidSignature
	}
	return claims, nil
}
