// Package operator provides the Operator entity. Operators are provisioned
// out-of-band (seed data) and are never self-registered; the identity
// resolver checks the operator set before falling back to customer
// provisioning.
package operator

import (
	"errors"

	"teashop/internal/pkg/errs"
	"teashop/internal/pkg/guard"
)

var (
	// ErrOperatorIsNotConstructed is returned when using an improperly initialized Operator.
	ErrOperatorIsNotConstructed = errors.New("Operator must be created via NewOperator constructor")
)

// Operator represents a shop operator who claims and completes orders.
type Operator struct {
	// id is the stable username from the identity provider
	id string
	// name is the human-readable display name
	name string
	// guard ensures the operator was properly constructed
	guard guard.ConstructorGuard
}

// NewOperator creates an Operator with a non-empty identifier and display name.
func NewOperator(id, name string) (*Operator, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("operatorId")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	return &Operator{id: id, name: name, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the Operator instance was properly constructed.
func (o *Operator) Validate() error {
	if o == nil {
		return ErrOperatorIsNotConstructed
	}
	return o.guard.Validate(ErrOperatorIsNotConstructed)
}

// ID returns the operator's stable username.
func (o *Operator) ID() string {
	return o.id
}

// Name returns the operator's display name.
func (o *Operator) Name() string {
	return o.name
}
