package commands

import (
	"context"
	"time"

	"kayakoyan/internal/core/domain/model/chat"
	"kayakoyan/internal/core/domain/policies"
	"kayakoyan/internal/core/ports"
)

// SendChatMessageCommandHandler posts a message to an order's chat. Only
// the order's customer and worker may chat, in any status.
type SendChatMessageCommandHandler struct {
	tx *Transactor
}

func NewSendChatMessageCommandHandler(tx *Transactor) SendChatMessageCommandHandler {
	return SendChatMessageCommandHandler{tx: tx}
}

func (h *SendChatMessageCommandHandler) Handle(ctx context.Context, cmd SendChatMessageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.tx.Do(ctx, func(uow ports.UnitOfWork) error {
		o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
		if err != nil {
			return err
		}
		if err = policies.AuthorizeOrder(cmd.Actor(), policies.ChatOrder, o); err != nil {
			return err
		}

		m, err := chat.NewMessage(
			cmd.MessageID(),
			o.ID(),
			cmd.Actor().ID(),
			cmd.Type(),
			cmd.Body(),
			cmd.Attachment(),
			time.Now().UTC(),
		)
		if err != nil {
			return err
		}
		return uow.ChatRepository().Add(ctx, m)
	})
}
