package queries

import (
	"errors"

	"teashop/internal/pkg/guard"
)

var ErrGetCustomerQueryIsNotConstructed = errors.New(
	"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
)

// ErrQueryIDIsRequired is returned when a lookup query is built without an id.
var ErrQueryIDIsRequired = errors.New("id is required")

// GetCustomerQuery retrieves a customer profile together with the customer's
// submitted order history. Open carts are not part of the history.
type GetCustomerQuery struct { //nolint:recvcheck //using for validation
	customerID string

	guard guard.ConstructorGuard
}

// NewGetCustomerQuery creates a query to retrieve one customer.
func NewGetCustomerQuery(customerID string) (GetCustomerQuery, error) {
	if customerID == "" {
		return GetCustomerQuery{}, ErrQueryIDIsRequired
	}

	return GetCustomerQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

// CustomerID returns the identifier to look up.
func (q GetCustomerQuery) CustomerID() string {
	return q.customerID
}

// CustomerResponse represents a customer profile with order history.
type CustomerResponse struct {
	ID     string
	Name   string
	Orders []OrderResponse
}
