package queries

import (
	"errors"

	"teashop/internal/core/domain/model/kernel"
	"teashop/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves a customer's open cart. A customer without an open
// cart gets an empty stub rather than an error, reading never opens a cart.
type GetCartQuery struct { //nolint:recvcheck //using for validation
	customerID string

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query to retrieve a customer's open cart.
func NewGetCartQuery(customerID string) (GetCartQuery, error) {
	if customerID == "" {
		return GetCartQuery{}, ErrQueryIDIsRequired
	}

	return GetCartQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (q GetCartQuery) CustomerID() string {
	return q.customerID
}

// CartResponse represents a customer's open cart. OrderID is nil for the
// synthesized empty stub returned when no cart is open.
type CartResponse struct {
	OrderID    *kernel.UUID
	CustomerID string
	ProductIDs []string
}
