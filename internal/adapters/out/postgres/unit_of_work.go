// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work groups repository operations of a single business
// transaction and coordinates commit and rollback across them.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//
//	if err := uow.OrderRepository().UpsertCart(ctx, customerID, productIDs); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Repositories obtained before Begin run against the main connection; after
// Begin they run inside the transaction. Each concurrent operation must use
// its own unit of work instance.
package postgres

import (
	"context"

	"teashop/internal/adapters/out/postgres/customerrepo"
	"teashop/internal/adapters/out/postgres/operatorrepo"
	"teashop/internal/adapters/out/postgres/orderrepo"
	"teashop/internal/adapters/out/postgres/productrepo"
	"teashop/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances bound to a shared GORM
// database connection. Each Create call returns a fresh instance so
// concurrent operations stay isolated from each other.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for a single business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates database transactions for business operations.
// It implements ports.UnitOfWork using GORM's transaction API.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a database transaction. Calling Begin again on an instance
// with an open transaction is a no-op, nested transactions are never created.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// After rollback the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository provides order persistence bound to the current transaction
// when one is active, otherwise to the main connection.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

// CustomerRepository provides customer persistence bound to the current
// transaction when one is active, otherwise to the main connection.
func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.conn())
}

// OperatorRepository provides operator persistence bound to the current
// transaction when one is active, otherwise to the main connection.
func (uow *GormUnitOfWork) OperatorRepository() ports.OperatorRepository {
	return operatorrepo.NewGormOperatorRepository(uow.conn())
}

// ProductRepository provides catalog persistence bound to the current
// transaction when one is active, otherwise to the main connection.
func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn())
}
