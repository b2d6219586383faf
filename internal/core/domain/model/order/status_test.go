package order_test

import (
	"fmt"
	"testing"

	"requisitions/internal/core/domain/model/order"
	"requisitions/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Created))
		assert.Equal(t, 2, int(order.DestinationReceived))
		assert.Equal(t, 3, int(order.Picking))
		assert.Equal(t, 4, int(order.Shipped))
		assert.Equal(t, 5, int(order.OriginReceived))
	})

	t.Run("should list statuses in lifecycle order", func(t *testing.T) {
		assert.Equal(t, []order.Status{
			order.Created, order.DestinationReceived, order.Picking, order.Shipped, order.OriginReceived,
		}, order.Statuses())
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range order.Statuses() {
		require.NoError(t, status.Validate(), status.String())
	}

	for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(6), order.Status(100)} {
		t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
			err := status.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
		})
	}
}

func TestStatus_CodesRoundTrip(t *testing.T) {
	expected := map[order.Status]string{
		order.Created:             "CREATED",
		order.DestinationReceived: "DESTINATION_RECEIVED",
		order.Picking:             "PICKING",
		order.Shipped:             "SHIPPED",
		order.OriginReceived:      "ORIGIN_RECEIVED",
	}

	for status, code := range expected {
		assert.Equal(t, code, status.String())

		parsed, err := order.ParseStatus(code)
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	assert.Equal(t, "UNKNOWN", order.Status(42).String())
	assert.Equal(t, "Received at origin", order.OriginReceived.Label())

	_, err := order.ParseStatus("DELIVERED")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	_, err = order.ParseStatus("UNKNOWN")
	require.Error(t, err)
}

func TestStatus_Advance(t *testing.T) {
	t.Run("should move forward through the destination steps", func(t *testing.T) {
		transitions := []struct {
			from order.Status
			to   order.Status
		}{
			{order.Created, order.DestinationReceived},
			{order.DestinationReceived, order.Picking},
			{order.Picking, order.Shipped},
		}

		for _, tc := range transitions {
			next, err := tc.from.Advance()

			require.NoError(t, err)
			assert.Equal(t, tc.to, next)
		}
	})

	t.Run("should report already final once shipped", func(t *testing.T) {
		for _, status := range []order.Status{order.Shipped, order.OriginReceived} {
			next, err := status.Advance()

			require.ErrorIs(t, err, errs.ErrAlreadyFinal)
			assert.Equal(t, order.Unknown, next)
			assert.Contains(t, err.Error(), status.String())
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := order.Unknown.Advance()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestStatus_ConfirmReceipt(t *testing.T) {
	t.Run("should complete a shipped order", func(t *testing.T) {
		next, err := order.Shipped.ConfirmReceipt()

		require.NoError(t, err)
		assert.Equal(t, order.OriginReceived, next)
		assert.True(t, next.IsFinal())
	})

	t.Run("should report already final on second confirmation", func(t *testing.T) {
		_, err := order.OriginReceived.ConfirmReceipt()

		require.ErrorIs(t, err, errs.ErrAlreadyFinal)
	})

	t.Run("should reject statuses before shipping", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Created, order.DestinationReceived, order.Picking} {
			_, err := status.ConfirmReceipt()

			require.ErrorIs(t, err, errs.ErrInvalidTransition, status.String())
			assert.Contains(t, err.Error(), "cannot confirm receipt from "+status.String())
		}
	})
}
