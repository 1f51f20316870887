package auth

import (
	"context"
	"strings"

	"github.com/devhub/devhub/errors"
)

// PrincipalLookup reconstructs a full principal from the credential store.
type PrincipalLookup interface {
	LookupPrincipal(ctx context.Context, username string) (*Principal, error)
}

// Resolver turns a raw Authorization header value into a Principal for the
// duration of one request. The store lookup is authoritative for the role
// set: the token's role claim is a cache hint for clients, so role changes
// take effect on the next resolution.
type Resolver struct {
	Codec  *TokenCodec
	Lookup PrincipalLookup
}

// Resolve returns (nil, nil) — Anonymous — when no bearer token is present.
// Token failures surface the codec's category; a valid token whose subject no
// longer exists fails with PrincipalNotFound.
func (r *Resolver) Resolve(ctx context.Context, rawHeaderValue string) (*Principal, error) {
	token, ok := bearerToken(rawHeaderValue)
	if !ok {
		return nil, nil
	}
	claims, err := r.Codec.Verify(token)
	if err != nil {
		return nil, err
	}
	p, err := r.Lookup.LookupPrincipal(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) || errors.Is(err, errors.ErrPrincipalNotFound) {
			return nil, errors.ErrPrincipalNotFound
		}
		return nil, err
	}
	return p, nil
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// value. ok is false when the header is absent or not a bearer credential.
func bearerToken(rawHeaderValue string) (string, bool) {
	if strings.TrimSpace(rawHeaderValue) == "" {
		return "", false
	}
	parts := strings.SplitN(rawHeaderValue, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
