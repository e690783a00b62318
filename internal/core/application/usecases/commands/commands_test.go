package commands_test

import (
	"testing"

	"kayakoyan/internal/core/application/usecases/commands"
	"kayakoyan/internal/core/domain/model/chat"
	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/domain/model/listing"
	"kayakoyan/internal/core/domain/model/order"
	"kayakoyan/internal/core/domain/model/payment"
	"kayakoyan/internal/core/domain/model/user"
	"kayakoyan/internal/core/domain/policies"
	"kayakoyan/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActor(t *testing.T, role user.Role) user.Actor {
	t.Helper()
	a, err := user.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func TestNewCreateListingCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	actor := newActor(t, user.Worker)
	price, err := kernel.MoneyFromString("750.50")
	require.NoError(t, err)

	cmd, err := commands.NewCreateListingCommand(id, actor, listing.Service, "Logo", "Vector logo", price, []string{"a.png"}, "")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, cmd.ListingID().IsEqual(id))
	assert.Equal(t, actor, cmd.Actor())
	assert.Equal(t, listing.Service, cmd.Type())
	assert.Equal(t, "Logo", cmd.Title())
	assert.Equal(t, "Vector logo", cmd.Description())
	assert.True(t, cmd.Price().IsEqual(price))
	assert.Equal(t, []string{"a.png"}, cmd.Images())
	assert.Empty(t, cmd.FilePath())
}

func TestNewCreateListingCommand_InvalidInput(t *testing.T) {
	var invalidID kernel.UUID
	var invalidPrice kernel.Money

	_, err := commands.NewCreateListingCommand(invalidID, user.Actor{}, listing.UnknownType, "Logo", "", invalidPrice, nil, "")

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	assert.ErrorIs(t, err, user.ErrActorIsNotConstructed)
	assert.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
}

func TestNewPlaceOrderCommand_ValidInput(t *testing.T) {
	orderID, listingID := kernel.NewUUID(), kernel.NewUUID()
	actor := newActor(t, user.Customer)

	cmd, err := commands.NewPlaceOrderCommand(orderID, actor, listingID)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.True(t, cmd.ListingID().IsEqual(listingID))
	assert.Equal(t, actor, cmd.Actor())
}

func TestNewPlaceOrderCommand_InvalidListingID(t *testing.T) {
	var invalidID kernel.UUID

	_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), newActor(t, user.Customer), invalidID)

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewRegisterUserCommand(t *testing.T) {
	t.Run("should accept workers and customers", func(t *testing.T) {
		for _, role := range []user.Role{user.Worker, user.Customer} {
			cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "Ana", "ana@example.com", "secret123", role)

			require.NoError(t, err)
			require.NoError(t, cmd.Validate())
			assert.Equal(t, role, cmd.Role())
			assert.Equal(t, "ana@example.com", cmd.Email())
		}
	})

	t.Run("should refuse admins and unknown roles", func(t *testing.T) {
		for _, role := range []user.Role{user.Admin, user.UnknownRole} {
			_, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "Ana", "ana@example.com", "secret123", role)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "cannot sign up")
		}
	})
}

func TestOrderStatusCommands(t *testing.T) {
	tests := []struct {
		name   string
		create func(user.Actor, kernel.UUID) (commands.OrderStatusCommand, error)
		action policies.OrderAction
		target order.Status
	}{
		{"start work", commands.NewStartWorkCommand, policies.StartWork, order.InProgress},
		{"accept", commands.NewAcceptOrderCommand, policies.AcceptOrder, order.Completed},
		{"complete", commands.NewCompleteOrderCommand, policies.CompleteOrder, order.Completed},
		{"cancel", commands.NewCancelOrderCommand, policies.CancelOrder, order.Cancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderID := kernel.NewUUID()

			cmd, err := tt.create(newActor(t, user.Worker), orderID)

			require.NoError(t, err)
			require.NoError(t, cmd.Validate())
			assert.True(t, cmd.OrderID().IsEqual(orderID))
			assert.Equal(t, tt.action, cmd.Action())
			assert.Equal(t, tt.target, cmd.Target())
		})
	}

	t.Run("should fail with an unconstructed actor", func(t *testing.T) {
		_, err := commands.NewCancelOrderCommand(user.Actor{}, kernel.NewUUID())

		require.ErrorIs(t, err, user.ErrActorIsNotConstructed)
	})
}

func TestNewSubmitPaymentCommand(t *testing.T) {
	t.Run("should keep every field", func(t *testing.T) {
		paymentID, orderID := kernel.NewUUID(), kernel.NewUUID()

		cmd, err := commands.NewSubmitPaymentCommand(paymentID, newActor(t, user.Customer), orderID, payment.GCash, "proof.jpg", "REF-1")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.PaymentID().IsEqual(paymentID))
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.Equal(t, payment.GCash, cmd.Method())
		assert.Equal(t, "proof.jpg", cmd.ProofPath())
		assert.Equal(t, "REF-1", cmd.ReferenceNumber())
	})

	t.Run("should fail with an unknown method", func(t *testing.T) {
		_, err := commands.NewSubmitPaymentCommand(kernel.NewUUID(), newActor(t, user.Customer), kernel.NewUUID(), payment.UnknownMethod, "proof.jpg", "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewVerifyPaymentCommand(t *testing.T) {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewVerifyPaymentCommand(newActor(t, user.Worker), orderID, false)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.False(t, cmd.Approve())
}

func TestNewSubmitDeliveryCommand(t *testing.T) {
	t.Run("should keep notes and files", func(t *testing.T) {
		cmd, err := commands.NewSubmitDeliveryCommand(kernel.NewUUID(), newActor(t, user.Worker), kernel.NewUUID(), "done", []string{"final.zip"})

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "done", cmd.Notes())
		assert.Equal(t, []string{"final.zip"}, cmd.Files())
	})

	t.Run("should fail with invalid order id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewSubmitDeliveryCommand(kernel.NewUUID(), newActor(t, user.Worker), invalidID, "done", nil)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestNewSendChatMessageCommand(t *testing.T) {
	t.Run("should keep every field", func(t *testing.T) {
		cmd, err := commands.NewSendChatMessageCommand(kernel.NewUUID(), newActor(t, user.Customer), kernel.NewUUID(), chat.File, "", "brief.pdf")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, chat.File, cmd.Type())
		assert.Equal(t, "brief.pdf", cmd.Attachment())
	})

	t.Run("should fail with an unknown type", func(t *testing.T) {
		_, err := commands.NewSendChatMessageCommand(kernel.NewUUID(), newActor(t, user.Customer), kernel.NewUUID(), chat.UnknownType, "hi", "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewRelayNotificationsCommand(t *testing.T) {
	t.Run("should keep batch size and attempts", func(t *testing.T) {
		cmd, err := commands.NewRelayNotificationsCommand(50, 5)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, 50, cmd.BatchSize())
		assert.Equal(t, 5, cmd.MaxAttempts())
	})

	t.Run("should reject non positive values", func(t *testing.T) {
		_, err := commands.NewRelayNotificationsCommand(0, -1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "batch size")
		assert.Contains(t, err.Error(), "max attempts")
	})
}

func TestCommands_ZeroValueIsNotConstructed(t *testing.T) {
	assert.ErrorIs(t, commands.CreateListingCommand{}.Validate(), commands.ErrCreateListingCommandIsNotConstructed)
	assert.ErrorIs(t, commands.PlaceOrderCommand{}.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
	assert.ErrorIs(t, commands.RegisterUserCommand{}.Validate(), commands.ErrRegisterUserCommandIsNotConstructed)
	assert.ErrorIs(t, commands.RelayNotificationsCommand{}.Validate(), commands.ErrRelayNotificationsCommandIsNotConstructed)
	assert.ErrorIs(t, commands.SendChatMessageCommand{}.Validate(), commands.ErrSendChatMessageCommandIsNotConstructed)
	assert.ErrorIs(t, commands.SubmitDeliveryCommand{}.Validate(), commands.ErrSubmitDeliveryCommandIsNotConstructed)
	assert.ErrorIs(t, commands.SubmitPaymentCommand{}.Validate(), commands.ErrSubmitPaymentCommandIsNotConstructed)
	assert.ErrorIs(t, commands.VerifyPaymentCommand{}.Validate(), commands.ErrVerifyPaymentCommandIsNotConstructed)
}
