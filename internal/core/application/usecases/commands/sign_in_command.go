package commands

import (
	"errors"

	"teashop/internal/pkg/guard"
)

var (
	ErrSignInCommandIsNotConstructed = errors.New(
		"SignInCommand must be created via NewSignInCommand constructor",
	)
	ErrUsernameIsRequired = errors.New("username is required")
)

// SignInCommand represents a request to resolve an asserted identity into a
// role. Authentication happened upstream; the command only carries the
// already-verified username and display name.
type SignInCommand struct { //nolint:recvcheck //using for validation
	username string
	name     string

	guard guard.ConstructorGuard
}

// NewSignInCommand creates a command to sign a user in.
// The display name is optional and falls back to the username.
func NewSignInCommand(username, name string) (SignInCommand, error) {
	signInCommand := SignInCommand{
		guard: guard.NewConstructorGuard(),
	}

	if username == "" {
		return SignInCommand{}, ErrUsernameIsRequired
	}
	signInCommand.username = username

	if name == "" {
		name = username
	}
	signInCommand.name = name

	return signInCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SignInCommand) Validate() error {
	return c.guard.Validate(ErrSignInCommandIsNotConstructed)
}

// Username returns the asserted unique identifier.
func (c SignInCommand) Username() string {
	return c.username
}

// Name returns the display name.
func (c SignInCommand) Name() string {
	return c.name
}
