package commands

import (
	"errors"
	"time"

	"teashop/internal/pkg/guard"
)

var (
	ErrRemoveStaleCartsCommandIsNotConstructed = errors.New(
		"RemoveStaleCartsCommand must be created via NewRemoveStaleCartsCommand constructor",
	)
	ErrRetentionIsInvalid = errors.New("retention must be greater than 0")
)

// RemoveStaleCartsCommand represents a request to drop open carts that have
// not been touched within the retention window.
type RemoveStaleCartsCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewRemoveStaleCartsCommand creates a command to sweep abandoned carts.
func NewRemoveStaleCartsCommand(retention time.Duration) (RemoveStaleCartsCommand, error) {
	sweepCommand := RemoveStaleCartsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if retention <= 0 {
		return RemoveStaleCartsCommand{}, ErrRetentionIsInvalid
	}
	sweepCommand.retention = retention

	return sweepCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveStaleCartsCommand) Validate() error {
	return c.guard.Validate(ErrRemoveStaleCartsCommandIsNotConstructed)
}

// Retention returns how long an untouched cart stays alive.
func (c RemoveStaleCartsCommand) Retention() time.Duration {
	return c.retention
}
