package commands

import (
	"errors"

	"teashop/internal/pkg/guard"
)

var (
	ErrUpdateCartCommandIsNotConstructed = errors.New(
		"UpdateCartCommand must be created via NewUpdateCartCommand constructor",
	)
	ErrCustomerIDIsRequired = errors.New("customer id is required")
)

// UpdateCartCommand represents a request to replace the contents of a
// customer's open cart. A missing cart is opened implicitly, so the same
// command serves both the first item added and every later edit.
//
// Example:
//
//	cmd, err := NewUpdateCartCommand("alice", []string{"taro-milk", "matcha-latte"})
//	if err != nil {
//	    return fmt.Errorf("invalid cart data: %w", err)
//	}
//
//	handler := NewUpdateCartCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to update cart: %w", err)
//	}
type UpdateCartCommand struct { //nolint:recvcheck //using for validation
	customerID string
	productIDs []string

	guard guard.ConstructorGuard
}

// NewUpdateCartCommand creates a command to replace a customer's cart items.
// An empty or nil item list is valid and empties the cart without closing it.
func NewUpdateCartCommand(customerID string, productIDs []string) (UpdateCartCommand, error) {
	cartCommand := UpdateCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cartCommand.setCustomerID(customerID); err != nil {
		return UpdateCartCommand{}, err
	}
	cartCommand.productIDs = append([]string(nil), productIDs...)

	return cartCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c UpdateCartCommand) CustomerID() string {
	return c.customerID
}

// ProductIDs returns the desired cart contents.
func (c UpdateCartCommand) ProductIDs() []string {
	return append([]string(nil), c.productIDs...)
}

func (c *UpdateCartCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return ErrCustomerIDIsRequired
	}

	c.customerID = customerID
	return nil
}
