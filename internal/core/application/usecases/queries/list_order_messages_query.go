package queries

import (
	"errors"
	"time"

	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/domain/model/user"
	"kayakoyan/internal/pkg/guard"
)

var ErrListOrderMessagesQueryIsNotConstructed = errors.New(
	"ListOrderMessagesQuery must be created via NewListOrderMessagesQuery constructor",
)

type ListOrderMessagesQuery struct {
	actor   user.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListOrderMessagesQuery(actor user.Actor, orderID kernel.UUID) (ListOrderMessagesQuery, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return ListOrderMessagesQuery{}, err
	}
	return ListOrderMessagesQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrderMessagesQuery) Validate() error {
	return q.guard.Validate(ErrListOrderMessagesQueryIsNotConstructed)
}

func (q ListOrderMessagesQuery) Actor() user.Actor    { return q.actor }
func (q ListOrderMessagesQuery) OrderID() kernel.UUID { return q.orderID }

type ListOrderMessagesQueryResponse struct {
	ID         kernel.UUID
	SenderID   kernel.UUID
	Type       string
	Body       string
	Attachment string
	CreatedAt  time.Time
}
