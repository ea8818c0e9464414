// Package product provides the catalog Product entity. Catalog rows are
// immutable once referenced by an order; orders store product IDs only,
// never denormalized copies.
package product

import (
	"errors"

	"teashop/internal/pkg/errs"
	"teashop/internal/pkg/guard"
)

var (
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product represents one catalog item a customer can add to a cart.
type Product struct {
	// id is the catalog identifier referenced by order item lists
	id string
	// name is the human-readable product name
	name string
	// price is the unit price; never negative
	price float64
	// description is optional marketing copy
	description string
	// rating is an optional aggregate review score
	rating float64
	// guard ensures the product was properly constructed
	guard guard.ConstructorGuard
}

// NewProduct creates a catalog Product. ID and name are required and the
// price must be non-negative; description and rating may be zero.
func NewProduct(id, name string, price float64, description string, rating float64) (*Product, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("productId")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if price < 0 {
		return nil, errs.NewValueIsOutOfRangeError("price", price, 0, nil)
	}

	return &Product{
		id:          id,
		name:        name,
		price:       price,
		description: description,
		rating:      rating,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the catalog identifier.
func (p *Product) ID() string {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the unit price.
func (p *Product) Price() float64 {
	return p.price
}

// Description returns the optional product description.
func (p *Product) Description() string {
	return p.description
}

// Rating returns the optional aggregate review score.
func (p *Product) Rating() float64 {
	return p.rating
}
