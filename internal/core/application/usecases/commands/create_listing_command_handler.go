package commands

import (
	"context"

	"kayakoyan/internal/core/domain/model/listing"
	"kayakoyan/internal/core/domain/policies"
	"kayakoyan/internal/core/ports"
)

type CreateListingCommandHandler struct {
	tx *Transactor
}

func NewCreateListingCommandHandler(tx *Transactor) CreateListingCommandHandler {
	return CreateListingCommandHandler{tx: tx}
}

// Handle stores the listing on behalf of the worker in the command. Only
// workers may create listings.
func (h *CreateListingCommandHandler) Handle(ctx context.Context, cmd CreateListingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := policies.AuthorizeListing(cmd.Actor(), policies.CreateListing, nil); err != nil {
		return err
	}

	l, err := listing.NewListing(
		cmd.ListingID(),
		cmd.Actor().ID(),
		cmd.Type(),
		cmd.Title(),
		cmd.Description(),
		cmd.Price(),
		cmd.Images(),
		cmd.FilePath(),
	)
	if err != nil {
		return err
	}

	return h.tx.Do(ctx, func(uow ports.UnitOfWork) error {
		return uow.ListingRepository().Add(ctx, l)
	})
}
