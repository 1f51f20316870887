package auth

import (
	"fmt"

	"github.com/devhub/devhub/errors"
)

// Decision is the outcome of an authorization check. Derived per request,
// never persisted.
type Decision struct {
	Allowed bool
	Reason  string
}

// Decide applies the platform's single write-access rule: allow iff the
// principal carries the elevated role or owns the resource. Existence of the
// resource must already have been confirmed by the caller; the guard never
// decides existence. Pure function, no side effects.
func Decide(p *Principal, resourceOwnerID uint64, elevatedRole string) Decision {
	if p == nil {
		return Decision{Reason: "no authenticated principal"}
	}
	if p.HasRole(elevatedRole) {
		return Decision{Allowed: true, Reason: fmt.Sprintf("principal holds %s", elevatedRole)}
	}
	if p.ID == resourceOwnerID {
		return Decision{Allowed: true, Reason: "principal owns the resource"}
	}
	return Decision{Reason: "principal is neither owner nor elevated"}
}

// Authorize is Decide folded to the error taxonomy: nil on allow,
// AuthenticationRequired for an anonymous principal, Forbidden otherwise.
func Authorize(p *Principal, resourceOwnerID uint64, elevatedRole string) error {
	if p == nil {
		return errors.ErrAuthenticationRequired
	}
	if d := Decide(p, resourceOwnerID, elevatedRole); !d.Allowed {
		return errors.ErrForbidden
	}
	return nil
}
