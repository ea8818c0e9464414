package order

import (
	"fmt"

	"teashop/internal/pkg/errs"
)

// State represents the lifecycle state of an order. It implements a strict
// forward chain with no skipping and no backward transitions:
//
//	cart ──> processing ──> delivering ──> done
//
// The cart state is the mutable pre-checkout stage; checkout moves the order
// to processing, an operator claim moves it to delivering, and completion by
// the claiming operator moves it to done.
type State string

const (
	// StateCart is the pre-checkout state. At most one order per customer
	// may be in this state at any time; the store enforces that uniqueness.
	StateCart State = "cart"

	// StateProcessing is entered via checkout. The order waits here until
	// an operator claims it.
	StateProcessing State = "processing"

	// StateDelivering means an operator has claimed the order and is
	// preparing it. The claiming operator's ID is attached to the order.
	StateDelivering State = "delivering"

	// StateDone is the terminal state. Done orders are immutable.
	StateDone State = "done"
)

// chain lists the states in strict forward order.
var chain = []State{StateCart, StateProcessing, StateDelivering, StateDone}

// ParseState converts raw input into a State, rejecting anything outside the
// enumeration. Used by inbound adapters before any store access happens.
func ParseState(raw string) (State, error) {
	s := State(raw)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate checks that the State value is a member of the lifecycle chain.
func (s State) Validate() error {
	for _, known := range chain {
		if s == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%q is not a valid order state", string(s)))
}

// String returns the wire representation of the state.
func (s State) String() string {
	return string(s)
}

// Predecessor returns the state immediately before s in the chain.
// The second return value is false for the first state and for values
// outside the enumeration.
func (s State) Predecessor() (State, bool) {
	for i, known := range chain {
		if s == known && i > 0 {
			return chain[i-1], true
		}
	}
	return "", false
}

// IsTerminal reports whether no further transitions are possible from s.
func (s State) IsTerminal() bool {
	return s == StateDone
}

// ValidateCanHaveOperator checks consistency between a state and operator
// assignment: cart and processing orders must be unclaimed, delivering and
// done orders must carry the claiming operator.
func (s State) ValidateCanHaveOperator(hasOperator bool) error {
	claimed := s == StateDelivering || s == StateDone
	if hasOperator && !claimed {
		return errs.NewValueIsInvalidErrorWithCause(
			"state",
			fmt.Errorf("%s is not a valid state to have an operator", s),
		)
	}
	if !hasOperator && claimed {
		return errs.NewValueIsInvalidErrorWithCause(
			"state",
			fmt.Errorf("%s is not a valid state to have no operator", s),
		)
	}
	return nil
}
