package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/devhub/devhub/errors"
)

// Claims is the structured data encoded inside an identity token.
// Roles are carried in transport form (ROLE_ prefixed).
type Claims struct {
	jwt.RegisteredClaims
	UserID uint64   `json:"id"`
	Roles  []string `json:"roles"`
}

// TokenCodec issues and verifies identity tokens signed with a process-wide
// symmetric key. The key is read-only after construction and safe for
// concurrent use.
type TokenCodec struct {
	SignedKey    []byte
	SignedMethod jwt.SigningMethod
	Lifetime     time.Duration
}

// NewTokenCodec creates a codec signing with HMAC-SHA256.
func NewTokenCodec(key []byte, lifetime time.Duration) *TokenCodec {
	return &TokenCodec{
		SignedKey:    key,
		SignedMethod: jwt.SigningMethodHS256,
		Lifetime:     lifetime,
	}
}

// Issue produces a signed token for the principal. The token embeds subject,
// numeric user id and the role set in transport form, with issuedAt = now and
// expiresAt = now + lifetime. No side effects beyond computation.
func (c *TokenCodec) Issue(p *Principal) (string, error) {
	if !c.isHs() {
		return "", errors.WithMessagef(errors.ErrTokenUnsupported, "unsupported signing method %s", c.SignedMethod.Alg())
	}
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.Lifetime)),
			ID:        uuid.NewString(),
		},
		UserID: p.ID,
		Roles:  TransportRoles(p.Roles),
	}
	token := jwt.NewWithClaims(c.SignedMethod, claims)
	return token.SignedString(c.SignedKey)
}

// Verify checks signature integrity and expiry and returns the parsed claims.
// It is a pure function of the token and the signing key; a failed verify is
// final for that token.
func (c *TokenCodec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if !strings.HasPrefix(t.Method.Alg(), "HS") {
			return nil, errors.WithMessagef(errors.ErrTokenUnsupported, "unsupported signing method %s", t.Method.Alg())
		}
		return c.SignedKey, nil
	}, jwt.WithIssuedAt())
	if err != nil {
		switch {
		case errors.Is(err, errors.ErrTokenUnsupported):
			return nil, errors.ErrTokenUnsupported
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, errors.ErrTokenExpired
		default:
			return nil, errors.ErrTokenMalformed
		}
	}
	if !token.Valid {
		return nil, errors.ErrTokenMalformed
	}
	return claims, nil
}

func (c *TokenCodec) isHs() bool { return strings.HasPrefix(c.SignedMethod.Alg(), "HS") }
