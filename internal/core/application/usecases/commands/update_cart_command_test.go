package commands_test

import (
	"testing"

	"teashop/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateCartCommand_Valid(t *testing.T) {
	cmd, err := commands.NewUpdateCartCommand("alice", []string{"taro-milk", "matcha-latte"})
	require.NoError(t, err)
	assert.Equal(t, "alice", cmd.CustomerID())
	assert.Equal(t, []string{"taro-milk", "matcha-latte"}, cmd.ProductIDs())
	assert.NoError(t, cmd.Validate())
}

func TestNewUpdateCartCommand_EmptyItems_Valid(t *testing.T) {
	cmd, err := commands.NewUpdateCartCommand("alice", nil)
	require.NoError(t, err)
	assert.Empty(t, cmd.ProductIDs())
}

func TestNewUpdateCartCommand_EmptyCustomer_Error(t *testing.T) {
	_, err := commands.NewUpdateCartCommand("", []string{"taro-milk"})
	require.ErrorIs(t, err, commands.ErrCustomerIDIsRequired)
}

func TestNewUpdateCartCommand_ItemsAreCopied(t *testing.T) {
	items := []string{"taro-milk"}
	cmd, err := commands.NewUpdateCartCommand("alice", items)
	require.NoError(t, err)

	items[0] = "mutated"
	assert.Equal(t, []string{"taro-milk"}, cmd.ProductIDs())
}

func TestUpdateCartCommand_ZeroValue_ValidateFails(t *testing.T) {
	var cmd commands.UpdateCartCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateCartCommandIsNotConstructed)
}
