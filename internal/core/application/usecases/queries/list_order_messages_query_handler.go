package queries

import (
	"context"

	"kayakoyan/internal/core/domain/policies"
	"kayakoyan/internal/core/ports"
)

type ListOrderMessagesQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewListOrderMessagesQueryHandler(uowFactory ports.UnitOfWorkFactory) ListOrderMessagesQueryHandler {
	return ListOrderMessagesQueryHandler{uowFactory: uowFactory}
}

// Handle returns the order chat, oldest message first, including the
// delivery notices posted by the system.
func (h ListOrderMessagesQueryHandler) Handle(
	ctx context.Context,
	query ListOrderMessagesQuery,
) ([]ListOrderMessagesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	o, err := uow.OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}
	if err = policies.AuthorizeOrder(query.Actor(), policies.ChatOrder, o); err != nil {
		return nil, err
	}

	messages, err := uow.ChatRepository().ListByOrder(ctx, o.ID())
	if err != nil {
		return nil, err
	}

	resp := make([]ListOrderMessagesQueryResponse, 0, len(messages))
	for _, m := range messages {
		resp = append(resp, ListOrderMessagesQueryResponse{
			ID:         m.ID(),
			SenderID:   m.SenderID(),
			Type:       m.Type().String(),
			Body:       m.Body(),
			Attachment: m.Attachment(),
			CreatedAt:  m.CreatedAt(),
		})
	}
	return resp, nil
}
