// Package queries contains read-only operations against the database.
// Query handlers bypass the domain model and read projection rows directly,
// the write side stays with the command handlers.
package queries

import (
	"errors"

	"teashop/internal/pkg/guard"
)

var ErrListInventoryQueryIsNotConstructed = errors.New(
	"ListInventoryQuery must be created via NewListInventoryQuery constructor",
)

// ListInventoryQuery retrieves the full product catalog.
//
// Example:
//
//	query := NewListInventoryQuery()
//	handler := NewListInventoryQueryHandler(db)
//
//	products, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list inventory: %w", err)
//	}
type ListInventoryQuery struct {
	guard guard.ConstructorGuard
}

// NewListInventoryQuery creates a query to retrieve the catalog.
func NewListInventoryQuery() ListInventoryQuery {
	return ListInventoryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListInventoryQuery) Validate() error {
	return q.guard.Validate(ErrListInventoryQueryIsNotConstructed)
}

// ProductResponse represents one catalog product in query results.
type ProductResponse struct {
	ID          string
	Name        string
	Price       float64
	Description string
	Rating      float64
}
