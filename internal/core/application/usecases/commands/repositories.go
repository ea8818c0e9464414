// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"teashop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories its operation touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// OperatorRepoFactory provides access to the operator repository within a transaction.
	OperatorRepoFactory interface {
		OperatorRepository() ports.OperatorRepository
	}

	// OrderUoW manages transactions for order-only operations:
	// cart writes, checkout and order state transitions.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// IdentityUoW manages transactions for sign-in, which reads operators
	// and writes customers.
	IdentityUoW interface {
		TxManager
		CustomerRepoFactory
		OperatorRepoFactory
	}

	// IdentityUoWFactory creates new identity unit of work instances.
	IdentityUoWFactory interface {
		Create() IdentityUoW
	}
)
