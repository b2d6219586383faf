package commands_test

import (
	"testing"

	"requisitions/internal/core/application/usecases/commands"
	"requisitions/internal/core/domain/model/cart"
	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	productID := kernel.NewUUID()
	filled, err := cart.NewCart().Add(productID, 3)
	require.NoError(t, err)

	t.Run("valid command", func(t *testing.T) {
		orderID, actorID := kernel.NewUUID(), kernel.NewUUID()

		cmd, err := commands.NewCreateOrderCommand(orderID, actorID, filled)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, orderID, cmd.OrderID())
		assert.Equal(t, actorID, cmd.ActorID())
		assert.Equal(t, 3, cmd.Cart().Quantity(productID))
	})

	t.Run("empty cart", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), cart.NewCart())

		require.ErrorIs(t, err, cart.ErrCartIsEmpty)
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("zero identifiers", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.UUID{}, kernel.UUID{}, filled)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero value command", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
