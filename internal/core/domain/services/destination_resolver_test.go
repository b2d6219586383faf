package services_test

import (
	"testing"

	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/core/domain/model/location"
	"requisitions/internal/core/domain/services"
	"requisitions/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLocation(t *testing.T, name string) *location.Location {
	t.Helper()
	l, err := location.NewLocation(kernel.NewUUID(), name)
	require.NoError(t, err)
	return l
}

func TestDestinationResolver_Resolve(t *testing.T) {
	queimados := mustLocation(t, "Queimados")
	austin := mustLocation(t, "Austin")
	nova := mustLocation(t, "Nova Iguacu")

	t.Run("prefers the configured branch", func(t *testing.T) {
		resolver := services.NewDestinationResolver("austin")

		got, err := resolver.Resolve(queimados.ID(), []*location.Location{nova, queimados, austin})

		require.NoError(t, err)
		assert.Equal(t, austin, got)
	})

	t.Run("falls back to the only other branch", func(t *testing.T) {
		resolver := services.NewDestinationResolver("")

		got, err := resolver.Resolve(queimados.ID(), []*location.Location{queimados, austin})

		require.NoError(t, err)
		assert.Equal(t, austin, got)
	})

	t.Run("returns the preferred branch even for its own users", func(t *testing.T) {
		resolver := services.NewDestinationResolver("Austin")

		got, err := resolver.Resolve(austin.ID(), []*location.Location{queimados, austin})

		require.NoError(t, err)
		assert.Equal(t, austin, got)
	})

	t.Run("reports configuration errors for ambiguous directories", func(t *testing.T) {
		resolver := services.NewDestinationResolver("Lisbon")

		for _, locations := range [][]*location.Location{
			{queimados},
			{queimados, austin, nova},
			nil,
		} {
			_, err := resolver.Resolve(queimados.ID(), locations)

			require.ErrorIs(t, err, errs.ErrConfiguration)
			assert.Contains(t, err.Error(), "Lisbon")
		}
	})
}
