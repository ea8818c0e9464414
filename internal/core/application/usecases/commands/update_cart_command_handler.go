package commands

import (
	"context"
)

// UpdateCartCommandHandler handles cart content updates.
// The write is an upsert keyed on the customer's single open cart, so
// concurrent updates for one customer converge on one cart row.
type UpdateCartCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateCartCommandHandler creates a handler for cart update operations.
func NewUpdateCartCommandHandler(uowFactory OrderUoWFactory) UpdateCartCommandHandler {
	return UpdateCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle replaces the customer's cart contents, opening the cart if needed.
func (h *UpdateCartCommandHandler) Handle(ctx context.Context, cmd UpdateCartCommand) error {
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

	if err := uow.OrderRepository().UpsertCart(ctx, cmd.CustomerID(), cmd.ProductIDs()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
