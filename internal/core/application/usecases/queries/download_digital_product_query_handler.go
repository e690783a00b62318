package queries

import (
	"context"

	"kayakoyan/internal/core/domain/policies"
	"kayakoyan/internal/core/ports"
)

type DownloadDigitalProductQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewDownloadDigitalProductQueryHandler(uowFactory ports.UnitOfWorkFactory) DownloadDigitalProductQueryHandler {
	return DownloadDigitalProductQueryHandler{uowFactory: uowFactory}
}

// Handle resolves the purchased file. Only the customer of a digital product
// order whose payment was verified may download it.
func (h DownloadDigitalProductQueryHandler) Handle(
	ctx context.Context,
	query DownloadDigitalProductQuery,
) (DownloadDigitalProductQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return DownloadDigitalProductQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	o, err := uow.OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return DownloadDigitalProductQueryResponse{}, err
	}
	if err = policies.AuthorizeOrder(query.Actor(), policies.DownloadOrder, o); err != nil {
		return DownloadDigitalProductQueryResponse{}, err
	}

	l, err := uow.ListingRepository().Get(ctx, o.ListingID())
	if err != nil {
		return DownloadDigitalProductQueryResponse{}, err
	}
	return DownloadDigitalProductQueryResponse{
		ListingID: l.ID(),
		Title:     l.Title(),
		FilePath:  l.FilePath(),
	}, nil
}
