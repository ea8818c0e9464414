package commands

import (
	"context"
	"time"
)

// RemoveStaleCartsCommandHandler sweeps abandoned carts.
// Only rows still in the cart state are touched, orders that made it to
// checkout are permanent history.
type RemoveStaleCartsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveStaleCartsCommandHandler creates a handler for cart sweeps.
func NewRemoveStaleCartsCommandHandler(uowFactory OrderUoWFactory) RemoveStaleCartsCommandHandler {
	return RemoveStaleCartsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes carts last updated before the retention cutoff and returns
// how many were removed.
func (h *RemoveStaleCartsCommandHandler) Handle(
	ctx context.Context, cmd RemoveStaleCartsCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-cmd.Retention())
	removed, err := uow.OrderRepository().DeleteStaleCarts(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
