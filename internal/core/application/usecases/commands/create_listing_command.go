package commands

import (
	"errors"
	"slices"

	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/domain/model/listing"
	"kayakoyan/internal/core/domain/model/user"
	"kayakoyan/internal/pkg/guard"
)

var ErrCreateListingCommandIsNotConstructed = errors.New(
	"CreateListingCommand must be created via NewCreateListingCommand constructor",
)

// CreateListingCommand carries a worker's new service or digital product.
// Images keep the order they were uploaded in.
type CreateListingCommand struct { //nolint:recvcheck //using for validation
	listingID   kernel.UUID
	actor       user.Actor
	listingType listing.Type
	title       string
	description string
	price       kernel.Money
	images      []string
	filePath    string

	guard guard.ConstructorGuard
}

func NewCreateListingCommand(
	listingID kernel.UUID,
	actor user.Actor,
	listingType listing.Type,
	title, description string,
	price kernel.Money,
	images []string,
	filePath string,
) (CreateListingCommand, error) {
	if err := errors.Join(
		listingID.Validate(),
		actor.Validate(),
		listingType.Validate(),
		price.Validate(),
	); err != nil {
		return CreateListingCommand{}, err
	}

	return CreateListingCommand{
		listingID:   listingID,
		actor:       actor,
		listingType: listingType,
		title:       title,
		description: description,
		price:       price,
		images:      slices.Clone(images),
		filePath:    filePath,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateListingCommand) Validate() error {
	return c.guard.Validate(ErrCreateListingCommandIsNotConstructed)
}

func (c CreateListingCommand) ListingID() kernel.UUID { return c.listingID }
func (c CreateListingCommand) Actor() user.Actor      { return c.actor }
func (c CreateListingCommand) Type() listing.Type     { return c.listingType }
func (c CreateListingCommand) Title() string          { return c.title }
func (c CreateListingCommand) Description() string    { return c.description }
func (c CreateListingCommand) Price() kernel.Money    { return c.price }
func (c CreateListingCommand) Images() []string       { return slices.Clone(c.images) }
func (c CreateListingCommand) FilePath() string       { return c.filePath }
