package order

import (
	"errors"

	"teashop/internal/core/domain/model/kernel"
	"teashop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewCart or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewCart or RestoreOrder")
)

// Order represents a customer order in the tea shop. It is the aggregate
// root covering the whole lifecycle: an open cart being edited, a
// checked-out order waiting in processing, a claimed order being prepared,
// and a completed drink.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier and an owning customer
//   - The owning customer never changes after creation
//   - Operator assignment is only present from the delivering state onward
//   - Can only be created through NewCart or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID is the owning customer, immutable after creation
	customerID string

	// productIDs is the ordered list of catalog references in the order
	productIDs []string

	// state is the current position in the lifecycle chain
	state State

	// operatorID is the claiming operator's ID (nil until claimed)
	operatorID *string

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewCart creates a new order in the cart state for the given customer.
// This is the only entry point into the lifecycle; every later state is
// reached through checkout and conditional transitions, never constructed
// directly by callers.
func NewCart(id kernel.UUID, customerID string, productIDs []string) (*Order, error) {
	return RestoreOrder(id, customerID, productIDs, StateCart, nil)
}

// RestoreOrder reconstructs an order from persistence, validating all
// invariants including state/operator consistency.
func RestoreOrder(
	id kernel.UUID, customerID string, productIDs []string, state State, operatorID *string,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if customerID == "" {
		return nil, errs.NewValueIsRequiredError("customerId")
	}
	if err := state.Validate(); err != nil {
		return nil, err
	}
	if err := state.ValidateCanHaveOperator(operatorID != nil); err != nil {
		return nil, err
	}
	if operatorID != nil && *operatorID == "" {
		return nil, errs.NewValueIsRequiredError("operatorId")
	}

	items := make([]string, len(productIDs))
	copy(items, productIDs)

	return &Order{
		id:            id,
		customerID:    customerID,
		productIDs:    items,
		state:         state,
		operatorID:    operatorID,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() string {
	return o.customerID
}

// ProductIDs returns a copy of the ordered catalog references.
func (o *Order) ProductIDs() []string {
	items := make([]string, len(o.productIDs))
	copy(items, o.productIDs)
	return items
}

// State returns the current lifecycle state of the order.
func (o *Order) State() State {
	return o.state
}

// Operator returns the claiming operator's ID, or nil if unclaimed.
func (o *Order) Operator() *string {
	return o.operatorID
}

// IsCart reports whether the order is still in the mutable cart state.
func (o *Order) IsCart() bool {
	return o.state == StateCart
}
