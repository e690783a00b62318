package queries

import (
	"errors"

	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/domain/model/user"
	"kayakoyan/internal/pkg/guard"
)

var ErrDownloadDigitalProductQueryIsNotConstructed = errors.New(
	"DownloadDigitalProductQuery must be created via NewDownloadDigitalProductQuery constructor",
)

type DownloadDigitalProductQuery struct {
	actor   user.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDownloadDigitalProductQuery(actor user.Actor, orderID kernel.UUID) (DownloadDigitalProductQuery, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return DownloadDigitalProductQuery{}, err
	}
	return DownloadDigitalProductQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q DownloadDigitalProductQuery) Validate() error {
	return q.guard.Validate(ErrDownloadDigitalProductQueryIsNotConstructed)
}

func (q DownloadDigitalProductQuery) Actor() user.Actor    { return q.actor }
func (q DownloadDigitalProductQuery) OrderID() kernel.UUID { return q.orderID }

// DownloadDigitalProductQueryResponse points at the stored product file.
type DownloadDigitalProductQueryResponse struct {
	ListingID kernel.UUID
	Title     string
	FilePath  string
}
