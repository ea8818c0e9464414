package queries

import (
	"errors"

	"teashop/internal/core/domain/model/kernel"
	"teashop/internal/pkg/guard"
)

var ErrListOpenOrdersQueryIsNotConstructed = errors.New(
	"ListOpenOrdersQuery must be created via NewListOpenOrdersQuery constructor",
)

// ListOpenOrdersQuery retrieves every order that left the cart state.
// This is the operator dashboard view: submitted, claimed and completed
// orders, with open carts excluded.
type ListOpenOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListOpenOrdersQuery creates a query to retrieve all submitted orders.
func NewListOpenOrdersQuery() ListOpenOrdersQuery {
	return ListOpenOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOpenOrdersQueryIsNotConstructed)
}

// OrderResponse represents one order in query results.
type OrderResponse struct {
	ID         kernel.UUID
	CustomerID string
	OperatorID *string
	ProductIDs []string
	State      string
}
