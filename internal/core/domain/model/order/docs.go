// Package order provides the domain model for customer orders in the tea
// shop. It implements the Order aggregate root together with the lifecycle
// state machine that governs how an order moves from an open cart to a
// completed drink.
//
// The package includes:
//   - Order: the aggregate root carrying identity, owner, items, and state
//   - State: the fixed forward chain cart -> processing -> delivering -> done
//   - Transition: a validated request to advance an order, expressed as the
//     match predicate a conditional store update must satisfy
//
// Key business rules:
//   - Item lists are mutable only while the order is in the cart state
//   - Transitions move strictly forward, one step at a time, and are
//     idempotent when replayed with the same target and operator
//   - An order is claimed by the first operator to reach the delivering
//     state and can only be completed by that same operator
package order
