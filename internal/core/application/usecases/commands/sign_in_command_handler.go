package commands

import (
	"context"
	"errors"

	"teashop/internal/core/domain/model/customer"
	"teashop/internal/pkg/errs"
)

// Role distinguishes the two kinds of signed-in users.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleOperator Role = "operator"
)

// SignInResult is the resolved identity returned by a successful sign-in.
type SignInResult struct {
	ID   string
	Name string
	Role Role
}

// SignInCommandHandler resolves an asserted username into a role.
// Usernames present in the operator registry sign in as operators and their
// stored profile wins over the asserted display name. Everyone else is a
// customer and is registered on first sign-in.
type SignInCommandHandler struct {
	uowFactory IdentityUoWFactory
}

// NewSignInCommandHandler creates a handler for sign-in operations.
func NewSignInCommandHandler(uowFactory IdentityUoWFactory) SignInCommandHandler {
	return SignInCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the identity, creating or refreshing the customer record
// for non-operators.
func (h *SignInCommandHandler) Handle(ctx context.Context, cmd SignInCommand) (SignInResult, error) {
	if err := cmd.Validate(); err != nil {
		return SignInResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SignInResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	op, err := uow.OperatorRepository().Get(ctx, cmd.Username())
	if err == nil {
		if err = uow.Commit(ctx); err != nil {
			return SignInResult{}, err
		}
		return SignInResult{ID: op.ID(), Name: op.Name(), Role: RoleOperator}, nil
	}

	var notFoundErr *errs.ObjectNotFoundError
	if !errors.As(err, &notFoundErr) {
		return SignInResult{}, err
	}

	newCustomer, err := customer.NewCustomer(cmd.Username(), cmd.Name())
	if err != nil {
		return SignInResult{}, err
	}

	if err = uow.CustomerRepository().Upsert(ctx, newCustomer); err != nil {
		return SignInResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return SignInResult{}, err
	}

	return SignInResult{ID: newCustomer.ID(), Name: newCustomer.Name(), Role: RoleCustomer}, nil
}
