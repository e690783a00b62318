package queries

import (
	"context"
	"errors"

	"kayakoyan/internal/core/domain/model/user"
	"kayakoyan/internal/core/ports"
	"kayakoyan/internal/pkg/errs"
)

type AuthenticateUserQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewAuthenticateUserQueryHandler(uowFactory ports.UnitOfWorkFactory) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{uowFactory: uowFactory}
}

// Handle returns the actor for valid credentials. An unknown email and a
// wrong password both yield user.ErrInvalidCredentials.
func (h AuthenticateUserQueryHandler) Handle(ctx context.Context, query AuthenticateUserQuery) (user.Actor, error) {
	if err := query.Validate(); err != nil {
		return user.Actor{}, err
	}

	u, err := h.uowFactory.Create().UserRepository().GetByEmail(ctx, query.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return user.Actor{}, user.ErrInvalidCredentials
		}
		return user.Actor{}, err
	}
	return u.Authenticate(query.Password())
}
