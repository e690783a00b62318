package delivery_test

import (
	"testing"
	"time"

	"kayakoyan/internal/core/domain/model/delivery"
	"kayakoyan/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDelivery(t *testing.T) {
	t.Run("should keep file order and record Created", func(t *testing.T) {
		orderID := kernel.NewUUID()

		d, err := delivery.NewDelivery(kernel.NewUUID(), orderID, " final cut ", []string{"b.mp4", "", "a.mp4"}, time.Now())

		require.NoError(t, err)
		assert.Equal(t, []string{"b.mp4", "a.mp4"}, d.Files())
		assert.Equal(t, "final cut", d.Notes())
		assert.True(t, d.HasNotes())

		events := d.PullDomainEvents()
		require.Len(t, events, 1)
		created, ok := events[0].(delivery.Created)
		require.True(t, ok)
		assert.True(t, created.OrderID.IsEqual(orderID))
		assert.Equal(t, "final cut", created.Notes)
	})

	t.Run("should allow no notes and no files", func(t *testing.T) {
		d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), "", nil, time.Now())

		require.NoError(t, err)
		assert.False(t, d.HasNotes())
		assert.Empty(t, d.Files())
	})

	t.Run("should fail without an order", func(t *testing.T) {
		var orderID kernel.UUID

		d, err := delivery.NewDelivery(kernel.NewUUID(), orderID, "", nil, time.Now())

		require.Error(t, err)
		assert.Nil(t, d)
	})
}

func TestRestoreDelivery(t *testing.T) {
	d, err := delivery.RestoreDelivery(kernel.NewUUID(), kernel.NewUUID(), "", []string{"x"}, time.Now())

	require.NoError(t, err)
	assert.Empty(t, d.PullDomainEvents())
	require.ErrorIs(t, (*delivery.Delivery)(nil).Validate(), delivery.ErrDeliveryIsNotConstructed)
}
