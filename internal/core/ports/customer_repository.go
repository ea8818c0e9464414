package ports

import (
	"context"

	"teashop/internal/core/domain/model/customer"
)

// CustomerRepository defines the persistence contract for customer entities.
type CustomerRepository interface {
	// Get retrieves a customer by its stable username.
	// Returns an ObjectNotFoundError when no such customer exists.
	Get(ctx context.Context, id string) (*customer.Customer, error)

	// Upsert writes the customer record, creating it on first login and
	// refreshing the display name on later ones. Idempotent: repeated
	// logins never duplicate rows.
	Upsert(ctx context.Context, aggregate *customer.Customer) error
}
