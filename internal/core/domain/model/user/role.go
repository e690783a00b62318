package user

import (
	"fmt"

	"kayakoyan/internal/pkg/errs"
)

// Role is the closed set of marketplace roles. Routing uses the tokens
// "admin", "worker" and "customer", which map one to one onto these values.
type Role int

const (
	// UnknownRole is the zero value and never matches a role gate.
	UnknownRole Role = iota
	Admin
	Worker
	Customer
)

func roleTokens() map[Role]string {
	//nolint:exhaustive // UnknownRole has no token
	return map[Role]string{
		Admin:    "admin",
		Worker:   "worker",
		Customer: "customer",
	}
}

// ParseRole maps a routing token onto a Role. Unknown tokens report false.
func ParseRole(token string) (Role, bool) {
	for role, t := range roleTokens() {
		if t == token {
			return role, true
		}
	}
	return UnknownRole, false
}

// String returns the routing token, or "unknown".
func (r Role) String() string {
	if t, ok := roleTokens()[r]; ok {
		return t
	}
	return "unknown"
}

func (r Role) Validate() error {
	if _, ok := roleTokens()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// In reports whether r is one of allowed.
func (r Role) In(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a && r != UnknownRole {
			return true
		}
	}
	return false
}
