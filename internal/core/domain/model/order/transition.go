package order

import (
	"errors"
	"fmt"

	"teashop/internal/core/domain/model/kernel"
	"teashop/internal/pkg/errs"
	"teashop/internal/pkg/guard"
)

var (
	// ErrTransitionIsNotConstructed is returned when a Transition was not
	// created through the NewTransition factory method.
	ErrTransitionIsNotConstructed = errors.New("Transition must be created via NewTransition constructor")

	// ErrInvalidTargetState is returned when a transition request names a
	// target outside the two client-reachable states. The cart state is
	// never a valid target, and processing is entered only via checkout.
	ErrInvalidTargetState = errors.New("target state is not reachable by a transition request")
)

// OwnershipRule describes which operator predicate a transition must satisfy
// when the store evaluates its match filter.
type OwnershipRule int

const (
	// OwnershipUnclaimedOrSelf matches orders with no operator attached or
	// with the requesting operator already attached. Used for the claim
	// step: the first claimant wins, and a replayed claim still matches.
	OwnershipUnclaimedOrSelf OwnershipRule = iota + 1

	// OwnershipOwnerOnly matches only orders whose attached operator equals
	// the requester. Used for the completion step.
	OwnershipOwnerOnly
)

// Transition is a validated request to advance an order one step along the
// lifecycle chain. Rather than mutating a loaded aggregate, a Transition
// describes the match predicate for a single atomic conditional update:
// the order's current state must be in AllowedCurrentStates and the
// operator assignment must satisfy Ownership. A store update that matches
// zero documents means the transition was rejected.
//
// Including the target itself in the allowed current states makes every
// transition idempotent under retry: replaying the same request against an
// order that already advanced is a matched no-op, not an error.
type Transition struct {
	orderID    kernel.UUID
	target     State
	operatorID string

	guard guard.ConstructorGuard
}

// NewTransition validates a transition request before any store access.
// The target must be delivering or done; any other value, including states
// outside the enumeration, yields ErrInvalidTargetState. The requesting
// operator is required for both reachable targets.
func NewTransition(orderID kernel.UUID, target State, operatorID string) (Transition, error) {
	if err := orderID.Validate(); err != nil {
		return Transition{}, err
	}
	if target != StateDelivering && target != StateDone {
		return Transition{}, fmt.Errorf("%w: %q", ErrInvalidTargetState, string(target))
	}
	if operatorID == "" {
		return Transition{}, errs.NewValueIsRequiredError("operatorId")
	}

	return Transition{
		orderID:    orderID,
		target:     target,
		operatorID: operatorID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Transition was created through NewTransition.
func (t Transition) Validate() error {
	return t.guard.Validate(ErrTransitionIsNotConstructed)
}

// OrderID returns the identifier of the order to advance.
func (t Transition) OrderID() kernel.UUID {
	return t.orderID
}

// Target returns the state the order should advance to.
func (t Transition) Target() State {
	return t.target
}

// OperatorID returns the identifier of the requesting operator.
func (t Transition) OperatorID() string {
	return t.operatorID
}

// AllowedCurrentStates returns the set of current states the order may be in
// for the transition to match: the target's predecessor for the forward step
// and the target itself for idempotent replay.
func (t Transition) AllowedCurrentStates() []State {
	pred, _ := t.target.Predecessor()
	return []State{pred, t.target}
}

// Ownership returns the operator predicate for the transition: claim steps
// require the order to be unclaimed or already claimed by the requester,
// completion requires the requester to be the claiming operator.
func (t Transition) Ownership() OwnershipRule {
	if t.target == StateDelivering {
		return OwnershipUnclaimedOrSelf
	}
	return OwnershipOwnerOnly
}
