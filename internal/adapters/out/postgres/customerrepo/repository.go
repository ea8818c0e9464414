package customerrepo

import (
	"context"
	"errors"

	"teashop/internal/core/domain/model/customer"
	"teashop/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Get retrieves a customer by username.
func (r *GormCustomerRepository) Get(ctx context.Context, id string) (*customer.Customer, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("customerId")
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Upsert writes the customer row, refreshing the display name when the
// username already exists. Repeated logins are therefore idempotent.
func (r *GormCustomerRepository) Upsert(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(&dto).Error
}
