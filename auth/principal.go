package auth

import "strings"

// Role names in canonical storage form. The set is closed.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// rolePrefix is the transport form prefix carried in token claims.
const rolePrefix = "ROLE_"

// Principal is the authenticated identity resolved for a request.
// A nil *Principal means Anonymous.
type Principal struct {
	ID       uint64
	Username string
	Roles    []string
}

// HasRole reports whether the principal carries the given storage-form role.
func (p *Principal) HasRole(role string) bool {
	if p == nil {
		return false
	}
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// NormalizeRole converts any accepted spelling of a role (bare or prefixed,
// any case) to storage form. ok is false for values outside the closed set.
func NormalizeRole(role string) (string, bool) {
	r := strings.ToUpper(strings.TrimSpace(role))
	r = strings.TrimPrefix(r, rolePrefix)
	switch r {
	case RoleUser, RoleAdmin:
		return r, true
	}
	return "", false
}

// NormalizeRoles filters a role list down to valid storage-form roles,
// deduplicated, input order preserved. Invalid values are dropped; an
// empty or all-invalid input yields an empty list (callers decide the
// default).
func NormalizeRoles(roles []string) []string {
	out := make([]string, 0, len(roles))
	seen := make(map[string]bool, len(roles))
	for _, role := range roles {
		r, ok := NormalizeRole(role)
		if !ok || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}

// DefaultRoles is the role set assigned at registration when none (or only
// invalid values) are supplied.
func DefaultRoles() []string { return []string{RoleUser} }

// TransportRoles converts storage-form roles to the prefixed transport form
// emitted in token claims.
func TransportRoles(roles []string) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = rolePrefix + r
	}
	return out
}
