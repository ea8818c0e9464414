package commands

import (
	"errors"

	"teashop/internal/core/domain/model/kernel"
	"teashop/internal/core/domain/model/order"
	"teashop/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand represents an operator's request to move an order to
// the next lifecycle state: claiming it for delivery or completing it.
//
// Example:
//
//	cmd, err := NewAdvanceOrderCommand(orderID, order.StateDelivering, "op-1")
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//
//	handler := NewAdvanceOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to advance order: %w", err)
//	}
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	transition order.Transition

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to advance an order.
// Target state and operator are validated by the transition constructor:
// only delivering and done are reachable, and an operator is always required.
func NewAdvanceOrderCommand(
	orderID kernel.UUID, target order.State, operatorID string,
) (AdvanceOrderCommand, error) {
	transition, err := order.NewTransition(orderID, target, operatorID)
	if err != nil {
		return AdvanceOrderCommand{}, err
	}

	return AdvanceOrderCommand{
		transition: transition,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// Transition returns the requested state transition.
func (c AdvanceOrderCommand) Transition() order.Transition {
	return c.transition
}
