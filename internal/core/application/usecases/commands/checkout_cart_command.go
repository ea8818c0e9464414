package commands

import (
	"errors"

	"teashop/internal/pkg/guard"
)

var ErrCheckoutCartCommandIsNotConstructed = errors.New(
	"CheckoutCartCommand must be created via NewCheckoutCartCommand constructor",
)

// CheckoutCartCommand represents a request to submit the customer's open
// cart into the processing queue.
type CheckoutCartCommand struct { //nolint:recvcheck //using for validation
	customerID string

	guard guard.ConstructorGuard
}

// NewCheckoutCartCommand creates a command to check out a customer's cart.
func NewCheckoutCartCommand(customerID string) (CheckoutCartCommand, error) {
	checkoutCommand := CheckoutCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if customerID == "" {
		return CheckoutCartCommand{}, ErrCustomerIDIsRequired
	}
	checkoutCommand.customerID = customerID

	return checkoutCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCartCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCartCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c CheckoutCartCommand) CustomerID() string {
	return c.customerID
}
