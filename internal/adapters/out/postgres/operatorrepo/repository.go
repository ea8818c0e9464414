package operatorrepo

import (
	"context"
	"errors"

	"teashop/internal/core/domain/model/operator"
	"teashop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOperatorRepository implements ports.OperatorRepository using GORM.
type GormOperatorRepository struct {
	db *gorm.DB
}

// NewGormOperatorRepository creates a new GORM operator repository.
func NewGormOperatorRepository(db *gorm.DB) *GormOperatorRepository {
	return &GormOperatorRepository{db: db}
}

// Get retrieves an operator by username.
func (r *GormOperatorRepository) Get(ctx context.Context, id string) (*operator.Operator, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("operatorId")
	}

	var dto OperatorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("operator", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Add persists a new operator row. Operators are never auto-created by the
// identity resolver; this exists for seeding and tests.
func (r *GormOperatorRepository) Add(ctx context.Context, aggregate *operator.Operator) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}
