package order_test

import (
	"testing"

	"teashop/internal/core/domain/model/kernel"
	"teashop/internal/core/domain/model/order"
	"teashop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCart(t *testing.T) {
	t.Run("creates_cart_state_order", func(t *testing.T) {
		id := kernel.NewUUID()

		cart, err := order.NewCart(id, "alice", []string{"boba", "strawberry"})

		require.NoError(t, err)
		require.NoError(t, cart.Validate())
		assert.True(t, id.IsEqual(cart.ID()))
		assert.Equal(t, "alice", cart.CustomerID())
		assert.Equal(t, []string{"boba", "strawberry"}, cart.ProductIDs())
		assert.Equal(t, order.StateCart, cart.State())
		assert.Nil(t, cart.Operator())
		assert.True(t, cart.IsCart())
	})

	t.Run("empty_item_list_is_allowed", func(t *testing.T) {
		cart, err := order.NewCart(kernel.NewUUID(), "alice", nil)

		require.NoError(t, err)
		assert.Empty(t, cart.ProductIDs())
	})

	t.Run("requires_customer", func(t *testing.T) {
		_, err := order.NewCart(kernel.NewUUID(), "", nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires_valid_id", func(t *testing.T) {
		_, err := order.NewCart(kernel.UUID{}, "alice", nil)

		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	operatorID := "jim"

	t.Run("restores_claimed_order", func(t *testing.T) {
		restored, err := order.RestoreOrder(
			kernel.NewUUID(), "bob", []string{"matcha"}, order.StateDelivering, &operatorID,
		)

		require.NoError(t, err)
		assert.Equal(t, order.StateDelivering, restored.State())
		require.NotNil(t, restored.Operator())
		assert.Equal(t, "jim", *restored.Operator())
		assert.False(t, restored.IsCart())
	})

	t.Run("rejects_operator_on_unclaimed_states", func(t *testing.T) {
		for _, state := range []order.State{order.StateCart, order.StateProcessing} {
			_, err := order.RestoreOrder(kernel.NewUUID(), "bob", nil, state, &operatorID)
			require.Error(t, err)
		}
	})

	t.Run("rejects_missing_operator_on_claimed_states", func(t *testing.T) {
		for _, state := range []order.State{order.StateDelivering, order.StateDone} {
			_, err := order.RestoreOrder(kernel.NewUUID(), "bob", nil, state, nil)
			require.Error(t, err)
		}
	})

	t.Run("rejects_unknown_state", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), "bob", nil, order.State("queued2"), nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_empty_operator_id", func(t *testing.T) {
		empty := ""
		_, err := order.RestoreOrder(kernel.NewUUID(), "bob", nil, order.StateDone, &empty)

		require.Error(t, err)
	})
}

func TestOrder_ProductIDs_IsDefensiveCopy(t *testing.T) {
	cart, err := order.NewCart(kernel.NewUUID(), "alice", []string{"boba"})
	require.NoError(t, err)

	items := cart.ProductIDs()
	items[0] = "mutated"

	assert.Equal(t, []string{"boba"}, cart.ProductIDs())
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_fails", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("nil_receiver_fails", func(t *testing.T) {
		var o *order.Order

		require.Error(t, o.Validate())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	first, err := order.NewCart(id, "alice", nil)
	require.NoError(t, err)
	second, err := order.NewCart(id, "alice", []string{"boba"})
	require.NoError(t, err)
	third, err := order.NewCart(kernel.NewUUID(), "alice", nil)
	require.NoError(t, err)

	assert.True(t, first.IsEqual(second))
	assert.False(t, first.IsEqual(third))
	assert.False(t, first.IsEqual(nil))
}
