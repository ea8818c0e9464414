package commands_test

import (
	"testing"

	"teashop/internal/core/application/usecases/commands"
	"teashop/internal/core/domain/model/kernel"
	"teashop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdvanceOrderCommand_Valid(t *testing.T) {
	id := kernel.NewUUID()

	for _, target := range []order.State{order.StateDelivering, order.StateDone} {
		t.Run(target.String(), func(t *testing.T) {
			cmd, err := commands.NewAdvanceOrderCommand(id, target, "op-1")
			require.NoError(t, err)
			assert.Equal(t, target, cmd.Transition().Target())
			assert.Equal(t, id, cmd.Transition().OrderID())
			assert.NoError(t, cmd.Validate())
		})
	}
}

func TestNewAdvanceOrderCommand_UnreachableTarget_Error(t *testing.T) {
	id := kernel.NewUUID()

	for _, target := range []order.State{order.StateCart, order.StateProcessing, order.State("blending")} {
		t.Run(string(target), func(t *testing.T) {
			_, err := commands.NewAdvanceOrderCommand(id, target, "op-1")
			require.ErrorIs(t, err, order.ErrInvalidTargetState)
		})
	}
}

func TestNewAdvanceOrderCommand_MissingOperator_Error(t *testing.T) {
	_, err := commands.NewAdvanceOrderCommand(kernel.NewUUID(), order.StateDelivering, "")
	require.Error(t, err)
}

func TestNewAdvanceOrderCommand_InvalidOrderID_Error(t *testing.T) {
	_, err := commands.NewAdvanceOrderCommand(kernel.UUID{}, order.StateDelivering, "op-1")
	require.Error(t, err)
}

func TestAdvanceOrderCommand_ZeroValue_ValidateFails(t *testing.T) {
	var cmd commands.AdvanceOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrAdvanceOrderCommandIsNotConstructed)
}
