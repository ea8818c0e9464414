package ports

import (
	"context"
	"time"

	"teashop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Every write is a single atomic conditional statement: the filter is
// evaluated and the patch applied indivisibly relative to other callers,
// which is the only concurrency primitive the core relies on. A write that
// matches nothing is reported as matched=false, never as a partial update.
type OrderRepository interface {
	// GetCart retrieves the customer's order in the cart state.
	// Returns an ObjectNotFoundError when the customer has no open cart;
	// reading never creates a record as a side effect.
	GetCart(ctx context.Context, customerID string) (*order.Order, error)

	// UpsertCart replaces the item list of the customer's unique cart-state
	// order wholesale, creating the cart if none exists. Safe to call
	// concurrently for the same customer: the store-level uniqueness
	// constraint over (customerID, state=cart) resolves the race to a
	// single winner without duplicating rows.
	UpsertCart(ctx context.Context, customerID string, productIDs []string) error

	// CheckoutCart atomically moves the customer's cart-state order to
	// processing, conditioned on such an order existing. Returns
	// matched=false when no cart-state order was found (nothing written).
	CheckoutCart(ctx context.Context, customerID string) (matched bool, err error)

	// Advance applies a validated transition as one conditional update:
	// state and operator are set only on the single order matching the
	// transition's current-state set and ownership predicate. Returns
	// matched=false when zero rows matched; the caller cannot distinguish
	// an absent order, a wrong current state, or an ownership conflict.
	Advance(ctx context.Context, transition order.Transition) (matched bool, err error)

	// DeleteStaleCarts removes cart-state orders untouched since the given
	// cutoff and reports how many were removed.
	DeleteStaleCarts(ctx context.Context, cutoff time.Time) (int64, error)
}
