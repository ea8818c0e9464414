package queries

import (
	"context"
	"database/sql"
	"errors"

	"teashop/internal/core/domain/model/order"
	"teashop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCustomerQueryHandler retrieves customer profiles from the database.
type GetCustomerQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerQueryHandler creates a handler for customer lookup queries.
func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

// Handle executes the customer lookup. Returns an ObjectNotFoundError when
// the customer does not exist; an existing customer with no submitted orders
// gets an empty history, not an error.
func (h GetCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerQuery,
) (CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerResponse{}, err
	}

	var response CustomerResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT id, name FROM customers WHERE id = ?
	`, query.CustomerID()).Row()
	if err := row.Scan(&response.ID, &response.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CustomerResponse{}, errs.NewObjectNotFoundError("customer", query.CustomerID())
		}
		return CustomerResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			operator_id,
			product_ids,
			state
		FROM orders
		WHERE customer_id = ? AND state != ?
		ORDER BY id
	`, query.CustomerID(), order.StateCart.String()).Rows()
	if err != nil {
		return CustomerResponse{}, err
	}
	defer rows.Close()

	response.Orders, err = scanOrderRows(rows)
	if err != nil {
		return CustomerResponse{}, err
	}

	return response, nil
}
