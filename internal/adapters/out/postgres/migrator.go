package postgres

import (
	"teashop/internal/adapters/out/postgres/customerrepo"
	"teashop/internal/adapters/out/postgres/operatorrepo"
	"teashop/internal/adapters/out/postgres/orderrepo"
	"teashop/internal/adapters/out/postgres/productrepo"

	"gorm.io/gorm"
)

// openCartIndexSQL enforces at most one cart row per customer. A partial
// unique index leaves completed orders out, so history for a customer can
// hold any number of closed orders while concurrent cart creation collapses
// into a single row.
const openCartIndexSQL = `CREATE UNIQUE INDEX IF NOT EXISTS uniq_orders_open_cart ` +
	`ON orders (customer_id) WHERE state = 'cart'`

// Migrate creates or updates the database schema for all persistence models
// and installs the partial unique index guarding open carts.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&customerrepo.CustomerDTO{},
		&operatorrepo.OperatorDTO{},
		&productrepo.ProductDTO{},
	); err != nil {
		return err
	}

	return db.Exec(openCartIndexSQL).Error
}
