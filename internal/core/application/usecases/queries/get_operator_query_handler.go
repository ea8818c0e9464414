package queries

import (
	"context"
	"database/sql"
	"errors"

	"teashop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOperatorQueryHandler retrieves operator profiles from the database.
type GetOperatorQueryHandler struct {
	db *gorm.DB
}

// NewGetOperatorQueryHandler creates a handler for operator lookup queries.
func NewGetOperatorQueryHandler(db *gorm.DB) GetOperatorQueryHandler {
	return GetOperatorQueryHandler{db: db}
}

// Handle executes the operator lookup. Returns an ObjectNotFoundError when
// the operator does not exist.
func (h GetOperatorQueryHandler) Handle(
	ctx context.Context,
	query GetOperatorQuery,
) (OperatorResponse, error) {
	if err := query.Validate(); err != nil {
		return OperatorResponse{}, err
	}

	var response OperatorResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT id, name FROM operators WHERE id = ?
	`, query.OperatorID()).Row()
	if err := row.Scan(&response.ID, &response.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OperatorResponse{}, errs.NewObjectNotFoundError("operator", query.OperatorID())
		}
		return OperatorResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			operator_id,
			product_ids,
			state
		FROM orders
		WHERE operator_id = ?
		ORDER BY id
	`, query.OperatorID()).Rows()
	if err != nil {
		return OperatorResponse{}, err
	}
	defer rows.Close()

	response.Orders, err = scanOrderRows(rows)
	if err != nil {
		return OperatorResponse{}, err
	}

	return response, nil
}
