// Package customer provides the Customer entity. Customers are provisioned
// lazily: the first successful login upserts a record keyed by the external
// username, and repeated logins are idempotent.
package customer

import (
	"errors"

	"teashop/internal/pkg/errs"
	"teashop/internal/pkg/guard"
)

var (
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer represents a shop customer. The identifier is the stable username
// asserted by the external authentication layer; the name is for display.
type Customer struct {
	// id is the stable username from the identity provider
	id string
	// name is the human-readable display name
	name string
	// guard ensures the customer was properly constructed
	guard guard.ConstructorGuard
}

// NewCustomer creates a Customer with a non-empty identifier and display name.
func NewCustomer(id, name string) (*Customer, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("customerId")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	return &Customer{id: id, name: name, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer's stable username.
func (c *Customer) ID() string {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}
