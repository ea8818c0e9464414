// Package operatorrepo provides the GORM-backed operator repository.
package operatorrepo

import (
	"teashop/internal/core/domain/model/operator"
)

// OperatorDTO represents the database row for an operator.
type OperatorDTO struct {
	ID   string `gorm:"primaryKey"`
	Name string
}

// TableName specifies the database table name for operator entities.
func (OperatorDTO) TableName() string {
	return "operators"
}

func fromDomain(aggregate *operator.Operator) OperatorDTO {
	return OperatorDTO{ID: aggregate.ID(), Name: aggregate.Name()}
}

func toDomain(dto OperatorDTO) (*operator.Operator, error) {
	return operator.NewOperator(dto.ID, dto.Name)
}
