package policies

import (
	"kayakoyan/internal/core/domain/model/listing"
	"kayakoyan/internal/core/domain/model/user"
	"kayakoyan/internal/pkg/errs"
)

type ListingAction string

const (
	ViewAnyListings ListingAction = "list"
	CreateListing   ListingAction = "create"
	ViewListing     ListingAction = "view"
	UpdateListing   ListingAction = "update"
	DeleteListing   ListingAction = "delete"
	OrderListing    ListingAction = "order"
)

func isWorkerRole(actor user.Actor) bool {
	return actor.Validate() == nil && actor.Role() == user.Worker
}

func CanViewAnyListings(actor user.Actor) bool { return isWorkerRole(actor) }
func CanCreateListing(actor user.Actor) bool   { return isWorkerRole(actor) }

// CanManageListing covers view, update and delete: only the owning worker.
func CanManageListing(actor user.Actor, l *listing.Listing) bool {
	return actor.Validate() == nil && l.Validate() == nil && l.IsOwnedBy(actor.ID())
}

// CanOrderListing: any customer, except for their own listing.
func CanOrderListing(actor user.Actor, l *listing.Listing) bool {
	return actor.Validate() == nil &&
		actor.Role() == user.Customer &&
		l.Validate() == nil &&
		!l.IsOwnedBy(actor.ID())
}

// AuthorizeListing checks action for actor; l may be nil for the
// collection actions.
func AuthorizeListing(actor user.Actor, action ListingAction, l *listing.Listing) error {
	var allowed bool
	switch action {
	case ViewAnyListings, CreateListing:
		allowed = isWorkerRole(actor)
	case ViewListing, UpdateListing, DeleteListing:
		allowed = CanManageListing(actor, l)
	case OrderListing:
		allowed = CanOrderListing(actor, l)
	}
	if allowed {
		return nil
	}
	entity := "listings"
	if l.Validate() == nil {
		entity = "listing " + l.ID().String()
	}
	return errs.NewUnauthorizedActionError(actor.String(), string(action), entity)
}
