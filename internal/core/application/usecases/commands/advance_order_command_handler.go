package commands

import (
	"context"
	"errors"
)

// ErrTransitionRejected is returned when no order row matched the
// transition's conditions. The order may not exist, may be in a state the
// transition cannot start from, or may belong to another operator. The
// update filter cannot tell these apart and the distinction is deliberately
// not surfaced.
var ErrTransitionRejected = errors.New("order transition rejected")

// AdvanceOrderCommandHandler handles order state transitions.
// Each transition is one conditional update whose filter encodes the allowed
// source states and the ownership rule, so replays succeed idempotently
// while rival claims and foreign completions match zero rows.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceOrderCommandHandler creates a handler for order transitions.
func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the transition, returning ErrTransitionRejected when the
// conditional update matched no row.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
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

	matched, err := uow.OrderRepository().Advance(ctx, cmd.Transition())
	if err != nil {
		return err
	}
	if !matched {
		return ErrTransitionRejected
	}

	return uow.Commit(ctx)
}
