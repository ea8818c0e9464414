package commands_test

import (
	"testing"

	"teashop/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckoutCartCommand_Valid(t *testing.T) {
	cmd, err := commands.NewCheckoutCartCommand("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", cmd.CustomerID())
	assert.NoError(t, cmd.Validate())
}

func TestNewCheckoutCartCommand_EmptyCustomer_Error(t *testing.T) {
	_, err := commands.NewCheckoutCartCommand("")
	require.ErrorIs(t, err, commands.ErrCustomerIDIsRequired)
}

func TestCheckoutCartCommand_ZeroValue_ValidateFails(t *testing.T) {
	var cmd commands.CheckoutCartCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCheckoutCartCommandIsNotConstructed)
}
