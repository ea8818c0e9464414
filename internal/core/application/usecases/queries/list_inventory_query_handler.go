package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListInventoryQueryHandler retrieves catalog products from the database.
type ListInventoryQueryHandler struct {
	db *gorm.DB
}

// NewListInventoryQueryHandler creates a handler for catalog queries.
func NewListInventoryQueryHandler(db *gorm.DB) ListInventoryQueryHandler {
	return ListInventoryQueryHandler{db: db}
}

// Handle executes the query to retrieve all catalog products sorted by id.
func (h ListInventoryQueryHandler) Handle(
	ctx context.Context,
	query ListInventoryQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]ProductResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			description,
			rating
		FROM products
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var product ProductResponse
		if err = rows.Scan(
			&product.ID,
			&product.Name,
			&product.Price,
			&product.Description,
			&product.Rating,
		); err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
