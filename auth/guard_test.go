package auth

import (
	"testing"

	"github.com/devhub/devhub/errors"
)

func TestDecide(t *testing.T) {
	owner := &Principal{ID: 1, Username: "owner", Roles: []string{RoleUser}}
	admin := &Principal{ID: 2, Username: "admin", Roles: []string{RoleAdmin}}
	other := &Principal{ID: 3, Username: "other", Roles: []string{RoleUser}}

	cases := []struct {
		name    string
		p       *Principal
		ownerID uint64
		allowed bool
	}{
		{"anonymous", nil, 1, false},
		{"owner", owner, 1, true},
		{"admin on another user's resource", admin, 1, true},
		{"admin on own resource", admin, 2, true},
		{"unrelated user", other, 1, false},
	}
	for _, tc := range cases {
		d := Decide(tc.p, tc.ownerID, RoleAdmin)
		if d.Allowed != tc.allowed {
			t.Errorf("%s: expected allowed=%v, got %v (%s)", tc.name, tc.allowed, d.Allowed, d.Reason)
		}
		if d.Reason == "" {
			t.Errorf("%s: expected a reason", tc.name)
		}
	}
}

func TestAuthorizeErrorMapping(t *testing.T) {
	other := &Principal{ID: 3, Username: "other", Roles: []string{RoleUser}}

	if err := Authorize(nil, 1, RoleAdmin); !errors.Is(err, errors.ErrAuthenticationRequired) {
		t.Fatalf("expected authentication required for anonymous, got %v", err)
	}
	if err := Authorize(other, 1, RoleAdmin); !errors.Is(err, errors.ErrForbidden) {
		t.Fatalf("expected forbidden for unrelated user, got %v", err)
	}
	if err := Authorize(other, 3, RoleAdmin); err != nil {
		t.Fatalf("expected owner to be allowed, got %v", err)
	}
}
