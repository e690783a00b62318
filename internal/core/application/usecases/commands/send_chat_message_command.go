package commands

import (
	"errors"

	"kayakoyan/internal/core/domain/model/chat"
	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/domain/model/user"
	"kayakoyan/internal/pkg/guard"
)

var ErrSendChatMessageCommandIsNotConstructed = errors.New(
	"SendChatMessageCommand must be created via NewSendChatMessageCommand constructor",
)

type SendChatMessageCommand struct { //nolint:recvcheck //using for validation
	messageID   kernel.UUID
	actor       user.Actor
	orderID     kernel.UUID
	messageType chat.MessageType
	body        string
	attachment  string

	guard guard.ConstructorGuard
}

func NewSendChatMessageCommand(
	messageID kernel.UUID,
	actor user.Actor,
	orderID kernel.UUID,
	messageType chat.MessageType,
	body, attachment string,
) (SendChatMessageCommand, error) {
	if err := errors.Join(
		messageID.Validate(),
		actor.Validate(),
		orderID.Validate(),
		messageType.Validate(),
	); err != nil {
		return SendChatMessageCommand{}, err
	}
	return SendChatMessageCommand{
		messageID:   messageID,
		actor:       actor,
		orderID:     orderID,
		messageType: messageType,
		body:        body,
		attachment:  attachment,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c SendChatMessageCommand) Validate() error {
	return c.guard.Validate(ErrSendChatMessageCommandIsNotConstructed)
}

func (c SendChatMessageCommand) MessageID() kernel.UUID { return c.messageID }
func (c SendChatMessageCommand) Actor() user.Actor      { return c.actor }
func (c SendChatMessageCommand) OrderID() kernel.UUID   { return c.orderID }
func (c SendChatMessageCommand) Type() chat.MessageType { return c.messageType }
func (c SendChatMessageCommand) Body() string           { return c.body }
func (c SendChatMessageCommand) Attachment() string     { return c.attachment }
