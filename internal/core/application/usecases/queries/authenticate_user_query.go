package queries

import (
	"errors"

	"kayakoyan/internal/pkg/guard"
)

var ErrAuthenticateUserQueryIsNotConstructed = errors.New(
	"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
)

// AuthenticateUserQuery checks a password login.
type AuthenticateUserQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewAuthenticateUserQuery(email, password string) AuthenticateUserQuery {
	return AuthenticateUserQuery{email: email, password: password, guard: guard.NewConstructorGuard()}
}

func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

func (q AuthenticateUserQuery) Email() string    { return q.email }
func (q AuthenticateUserQuery) Password() string { return q.password }
