package orderrepo

import (
	"context"
	"errors"
	"time"

	"teashop/internal/core/domain/model/order"
	"teashop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
//
// Correctness of the transition protocol rests entirely on Postgres
// evaluating each UPDATE's WHERE clause and applying the SET atomically per
// row: concurrent updates to the same order are serialized by the store,
// and the loser sees zero affected rows instead of corrupting state.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// GetCart retrieves the customer's cart-state order without writing anything.
func (r *GormOrderRepository) GetCart(ctx context.Context, customerID string) (*order.Order, error) {
	if customerID == "" {
		return nil, errs.NewValueIsRequiredError("customerId")
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		First(&dto, "customer_id = ? AND state = ?", customerID, order.StateCart.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart", customerID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpsertCart replaces the item list of the customer's unique open cart,
// inserting a fresh cart row when none exists. The ON CONFLICT target is the
// partial unique index over (customer_id) WHERE state='cart', so two
// concurrent upserts for the same customer resolve to one row with the last
// writer's list.
func (r *GormOrderRepository) UpsertCart(ctx context.Context, customerID string, productIDs []string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}

	items := pq.StringArray(productIDs)
	if items == nil {
		items = pq.StringArray{}
	}

	dto := OrderDTO{
		ID:         uuid.New(),
		CustomerID: customerID,
		ProductIDs: items,
		State:      order.StateCart.String(),
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "customer_id"}},
		TargetWhere: clause.Where{Exprs: []clause.Expression{
			clause.Eq{Column: "state", Value: order.StateCart.String()},
		}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"product_ids": items,
			"updated_at":  time.Now().UTC(),
		}),
	}).Create(&dto).Error
}

// CheckoutCart conditionally advances the customer's cart to processing.
// Zero affected rows means no cart-state order existed and nothing was written.
func (r *GormOrderRepository) CheckoutCart(ctx context.Context, customerID string) (bool, error) {
	if customerID == "" {
		return false, errs.NewValueIsRequiredError("customerId")
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("customer_id = ? AND state = ?", customerID, order.StateCart.String()).
		Updates(map[string]interface{}{"state": order.StateProcessing.String()})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// Advance applies a transition as one conditional update. The filter is the
// transition's allowed-current-state set plus its ownership predicate; the
// patch sets state and operator together. No lock is taken anywhere: a
// request that loses a race simply matches zero rows.
func (r *GormOrderRepository) Advance(ctx context.Context, transition order.Transition) (bool, error) {
	if err := transition.Validate(); err != nil {
		return false, err
	}

	states := transition.AllowedCurrentStates()
	allowed := make([]string, len(states))
	for i, s := range states {
		allowed[i] = s.String()
	}

	tx := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", transition.OrderID().Bytes()).
		Where("state IN ?", allowed)

	switch transition.Ownership() {
	case order.OwnershipUnclaimedOrSelf:
		tx = tx.Where("(operator_id IS NULL OR operator_id = ?)", transition.OperatorID())
	case order.OwnershipOwnerOnly:
		tx = tx.Where("operator_id = ?", transition.OperatorID())
	}

	result := tx.Updates(map[string]interface{}{
		"state":       transition.Target().String(),
		"operator_id": transition.OperatorID(),
	})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// DeleteStaleCarts removes cart-state orders not touched since the cutoff.
func (r *GormOrderRepository) DeleteStaleCarts(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("state = ? AND updated_at < ?", order.StateCart.String(), cutoff).
		Delete(&OrderDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
