package auth

import (
	"context"
	"testing"
	"time"

	"github.com/devhub/devhub/errors"
)

type staticLookup struct {
	principals map[string]*Principal
}

func (l *staticLookup) LookupPrincipal(ctx context.Context, username string) (*Principal, error) {
	if p, ok := l.principals[username]; ok {
		return p, nil
	}
	return nil, errors.ErrNotFound
}

func newTestResolver(lifetime time.Duration, principals map[string]*Principal) *Resolver {
	return &Resolver{
		Codec:  NewTokenCodec([]byte("test-signing-key"), lifetime),
		Lookup: &staticLookup{principals: principals},
	}
}

func TestResolveAnonymous(t *testing.T) {
	r := newTestResolver(time.Hour, nil)

	for _, header := range []string{"", "   ", "Basic dXNlcjpwYXNz", "Bearer", "Bearer   "} {
		p, err := r.Resolve(context.Background(), header)
		if err != nil {
			t.Fatalf("header %q: expected no error, got %v", header, err)
		}
		if p != nil {
			t.Fatalf("header %q: expected anonymous, got %+v", header, p)
		}
	}
}

func TestResolveValidToken(t *testing.T) {
	stored := &Principal{ID: 1, Username: "alice", Roles: []string{RoleUser}}
	r := newTestResolver(time.Hour, map[string]*Principal{"alice": stored})

	token, err := r.Codec.Issue(stored)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	p, err := r.Resolve(context.Background(), "Bearer "+token)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if p == nil || p.ID != 1 || p.Username != "alice" {
		t.Fatalf("unexpected principal: %+v", p)
	}

	// Scheme matching is case-insensitive.
	if _, err := r.Resolve(context.Background(), "bearer "+token); err != nil {
		t.Fatalf("lowercase scheme failed: %v", err)
	}
}

func TestResolveStoreRolesWin(t *testing.T) {
	// Token was issued while alice only had USER; the store now also grants
	// ADMIN. The resolved principal must carry the store's role set.
	atIssue := &Principal{ID: 1, Username: "alice", Roles: []string{RoleUser}}
	r := newTestResolver(time.Hour, map[string]*Principal{
		"alice": {ID: 1, Username: "alice", Roles: []string{RoleAdmin, RoleUser}},
	})

	token, err := r.Codec.Issue(atIssue)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	p, err := r.Resolve(context.Background(), "Bearer "+token)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if !p.HasRole(RoleAdmin) {
		t.Fatalf("expected store-granted ADMIN role, got %v", p.Roles)
	}
}

func TestResolveDeletedSubject(t *testing.T) {
	gone := &Principal{ID: 9, Username: "ghost", Roles: []string{RoleUser}}
	r := newTestResolver(time.Hour, nil)

	token, err := r.Codec.Issue(gone)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	_, err = r.Resolve(context.Background(), "Bearer "+token)
	if !errors.Is(err, errors.ErrPrincipalNotFound) {
		t.Fatalf("expected principal not found, got %v", err)
	}
}

func TestResolveExpiredToken(t *testing.T) {
	stored := &Principal{ID: 1, Username: "alice", Roles: []string{RoleUser}}
	r := newTestResolver(-time.Minute, map[string]*Principal{"alice": stored})

	token, err := r.Codec.Issue(stored)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	_, err = r.Resolve(context.Background(), "Bearer "+token)
	if !errors.Is(err, errors.ErrTokenExpired) {
		t.Fatalf("expected token expired, got %v", err)
	}
}
