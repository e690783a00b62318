package commands

import (
	"context"

	"kayakoyan/internal/core/domain/model/user"
	"kayakoyan/internal/core/ports"
)

type RegisterUserCommandHandler struct {
	tx *Transactor
}

func NewRegisterUserCommandHandler(tx *Transactor) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{tx: tx}
}

// Handle hashes the password and stores the account. The repository rejects
// a second account with the same email.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	u, err := user.NewUser(cmd.UserID(), cmd.Name(), cmd.Email(), cmd.Password(), cmd.Role())
	if err != nil {
		return err
	}

	return h.tx.Do(ctx, func(uow ports.UnitOfWork) error {
		return uow.UserRepository().Add(ctx, u)
	})
}
