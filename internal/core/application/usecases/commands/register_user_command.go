package commands

import (
	"errors"
	"fmt"

	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/domain/model/user"
	"kayakoyan/internal/pkg/errs"
	"kayakoyan/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand signs up a worker or a customer. Admin accounts are
// provisioned out of band.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	name     string
	email    string
	password string
	role     user.Role

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(userID kernel.UUID, name, email, password string, role user.Role) (RegisterUserCommand, error) {
	if err := userID.Validate(); err != nil {
		return RegisterUserCommand{}, err
	}
	if !role.In(user.Worker, user.Customer) {
		return RegisterUserCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%s cannot sign up", role),
		)
	}
	return RegisterUserCommand{
		userID:   userID,
		name:     name,
		email:    email,
		password: password,
		role:     role,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) UserID() kernel.UUID { return c.userID }
func (c RegisterUserCommand) Name() string        { return c.name }
func (c RegisterUserCommand) Email() string       { return c.email }
func (c RegisterUserCommand) Password() string    { return c.password }
func (c RegisterUserCommand) Role() user.Role     { return c.role }
