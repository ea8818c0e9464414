package commands_test

import (
	"testing"
	"time"

	"teashop/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRemoveStaleCartsCommand_Valid(t *testing.T) {
	cmd, err := commands.NewRemoveStaleCartsCommand(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cmd.Retention())
	assert.NoError(t, cmd.Validate())
}

func TestNewRemoveStaleCartsCommand_NonPositiveRetention_Error(t *testing.T) {
	for _, retention := range []time.Duration{0, -time.Hour} {
		_, err := commands.NewRemoveStaleCartsCommand(retention)
		require.ErrorIs(t, err, commands.ErrRetentionIsInvalid)
	}
}

func TestRemoveStaleCartsCommand_ZeroValue_ValidateFails(t *testing.T) {
	var cmd commands.RemoveStaleCartsCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrRemoveStaleCartsCommandIsNotConstructed)
}
