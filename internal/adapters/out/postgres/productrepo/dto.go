// Package productrepo provides the GORM-backed catalog product repository.
package productrepo

import (
	"teashop/internal/core/domain/model/product"
)

// ProductDTO represents the database row for a catalog product.
type ProductDTO struct {
	ID          string `gorm:"primaryKey"`
	Name        string
	Price       float64
	Description string
	Rating      float64
}

// TableName specifies the database table name for catalog products.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID(),
		Name:        aggregate.Name(),
		Price:       aggregate.Price(),
		Description: aggregate.Description(),
		Rating:      aggregate.Rating(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	return product.NewProduct(dto.ID, dto.Name, dto.Price, dto.Description, dto.Rating)
}
