package ports

import (
	"context"

	"teashop/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// GetAll retrieves the full product catalog, unordered.
	GetAll(ctx context.Context) ([]*product.Product, error)

	// Add persists a new catalog product. Used by seeding and tests only.
	Add(ctx context.Context, aggregate *product.Product) error
}
