// Package customerrepo provides the GORM-backed customer repository.
package customerrepo

import (
	"teashop/internal/core/domain/model/customer"
)

// CustomerDTO represents the database row for a customer. The primary key is
// the stable username asserted by the external identity layer.
type CustomerDTO struct {
	ID   string `gorm:"primaryKey"`
	Name string
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{ID: aggregate.ID(), Name: aggregate.Name()}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	return customer.NewCustomer(dto.ID, dto.Name)
}
