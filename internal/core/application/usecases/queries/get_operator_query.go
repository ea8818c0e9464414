package queries

import (
	"errors"

	"teashop/internal/pkg/guard"
)

var ErrGetOperatorQueryIsNotConstructed = errors.New(
	"GetOperatorQuery must be created via NewGetOperatorQuery constructor",
)

// GetOperatorQuery retrieves an operator profile together with every order
// the operator has claimed, completed ones included.
type GetOperatorQuery struct { //nolint:recvcheck //using for validation
	operatorID string

	guard guard.ConstructorGuard
}

// NewGetOperatorQuery creates a query to retrieve one operator.
func NewGetOperatorQuery(operatorID string) (GetOperatorQuery, error) {
	if operatorID == "" {
		return GetOperatorQuery{}, ErrQueryIDIsRequired
	}

	return GetOperatorQuery{
		operatorID: operatorID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOperatorQuery) Validate() error {
	return q.guard.Validate(ErrGetOperatorQueryIsNotConstructed)
}

// OperatorID returns the identifier to look up.
func (q GetOperatorQuery) OperatorID() string {
	return q.operatorID
}

// OperatorResponse represents an operator profile with claimed orders.
type OperatorResponse struct {
	ID     string
	Name   string
	Orders []OrderResponse
}
