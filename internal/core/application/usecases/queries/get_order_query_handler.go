package queries

import (
	"context"
	"errors"

	"kayakoyan/internal/core/domain/policies"
	"kayakoyan/internal/core/ports"
	"kayakoyan/internal/pkg/errs"
)

type GetOrderQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetOrderQueryHandler(uowFactory ports.UnitOfWorkFactory) GetOrderQueryHandler {
	return GetOrderQueryHandler{uowFactory: uowFactory}
}

// Handle returns the order if the actor is its customer or worker.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	o, err := uow.OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if err = policies.AuthorizeOrder(query.Actor(), policies.ViewOrder, o); err != nil {
		return GetOrderQueryResponse{}, err
	}

	next := o.Status().AllowedTransitions()
	resp := GetOrderQueryResponse{
		ID:           o.ID(),
		CustomerID:   o.CustomerID(),
		WorkerID:     o.WorkerID(),
		ListingID:    o.ListingID(),
		ListingType:  o.ListingType().String(),
		Status:       o.Status().String(),
		NextStatuses: make([]string, 0, len(next)),
		TotalPrice:   o.TotalPrice().String(),
		CreatedAt:    o.CreatedAt(),
		CompletedAt:  o.CompletedAt(),
	}
	for _, s := range next {
		resp.NextStatuses = append(resp.NextStatuses, s.String())
	}

	p, err := uow.PaymentRepository().GetLatestForOrder(ctx, o.ID())
	switch {
	case err == nil:
		resp.Payment = &OrderPaymentResponse{
			ID:              p.ID(),
			Method:          p.Method().String(),
			Amount:          p.Amount().String(),
			ReferenceNumber: p.ReferenceNumber(),
			Status:          p.Status().String(),
			CreatedAt:       p.CreatedAt(),
		}
	case !errors.Is(err, errs.ErrObjectNotFound):
		return GetOrderQueryResponse{}, err
	}

	d, err := uow.DeliveryRepository().GetByOrder(ctx, o.ID())
	switch {
	case err == nil:
		resp.Delivery = &OrderDeliveryResponse{
			ID:        d.ID(),
			Notes:     d.Notes(),
			Files:     d.Files(),
			CreatedAt: d.CreatedAt(),
		}
	case !errors.Is(err, errs.ErrObjectNotFound):
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}
