package queries

import (
	"errors"
	"time"

	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/domain/model/user"
	"kayakoyan/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery fetches one order as seen by one of its parties.
type GetOrderQuery struct {
	actor   user.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(actor user.Actor, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Actor() user.Actor    { return q.actor }
func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// GetOrderQueryResponse is the order with its current payment and delivery,
// when there are any. NextStatuses lists the statuses reachable from the
// current one.
type GetOrderQueryResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	WorkerID     kernel.UUID
	ListingID    kernel.UUID
	ListingType  string
	Status       string
	NextStatuses []string
	TotalPrice   string
	CreatedAt    time.Time
	CompletedAt  *time.Time
	Payment      *OrderPaymentResponse
	Delivery     *OrderDeliveryResponse
}

type OrderPaymentResponse struct {
	ID              kernel.UUID
	Method          string
	Amount          string
	ReferenceNumber string
	Status          string
	CreatedAt       time.Time
}

type OrderDeliveryResponse struct {
	ID        kernel.UUID
	Notes     string
	Files     []string
	CreatedAt time.Time
}
