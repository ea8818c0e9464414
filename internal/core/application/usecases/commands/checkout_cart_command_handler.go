package commands

import (
	"context"
	"errors"
)

// ErrNoActiveCart is returned when checkout finds no open cart for the
// customer, either because none was ever opened or a concurrent checkout
// already submitted it.
var ErrNoActiveCart = errors.New("customer has no active cart")

// CheckoutCartCommandHandler handles cart checkout.
// The state change is a single conditional update filtered on the cart
// state, so two concurrent checkouts cannot both succeed.
type CheckoutCartCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCheckoutCartCommandHandler creates a handler for checkout operations.
func NewCheckoutCartCommandHandler(uowFactory OrderUoWFactory) CheckoutCartCommandHandler {
	return CheckoutCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle moves the customer's open cart into processing.
// Returns ErrNoActiveCart if no open cart row matched the update.
func (h *CheckoutCartCommandHandler) Handle(ctx context.Context, cmd CheckoutCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	matched, err := uow.OrderRepository().CheckoutCart(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if !matched {
		return ErrNoActiveCart
	}

	return uow.Commit(ctx)
}
