// Package saga coordinates operations that span the identity store and the
// domain store. The two stores have no shared transaction; a divergence is
// reported as errs.FatalInconsistencyError and recorded in the compensation
// log for the compensation job to repair.
package saga

import (
	"context"
	"errors"

	"gamestore/internal/core/application/usecases/commands"
	"gamestore/internal/core/domain/model/compensation"
	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/core/domain/model/owner"
	"gamestore/internal/core/ports"
	"gamestore/internal/pkg/errs"
	"gamestore/internal/pkg/logger"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email is already registered")
	ErrIdentityRejected       = errors.New("identity store rejected the request")
)

// AccountCoordinator registers, removes and re-roles accounts.
//
// Register writes the identity first and the owner second. When the owner
// cannot be committed the identity record stays, and a delete_identity_account
// compensation is recorded instead of deleting it inline.
//
// Remove deletes the owner first and the identity second, so that a failure
// never leaves an owner without credentials.
type AccountCoordinator struct {
	uowFactory    commands.OwnerUoWFactory
	identity      ports.IdentityGateway
	compensations ports.CompensationLog
	clock         kernel.Clock
	log           *logger.Logger
}

// NewAccountCoordinator wires the two stores together.
//
// Example:
//
//	coordinator := saga.NewAccountCoordinator(ownerUoWFactory, identityGateway,
//	    compensationLog, kernel.SystemClock{}, log)
//
//	owner, err := coordinator.Register(ctx, cmd)
//	if errors.Is(err, errs.ErrFatalInconsistency) {
//	    // the stores diverged; a compensation was recorded
//	}
func NewAccountCoordinator(
	uowFactory commands.OwnerUoWFactory,
	identity ports.IdentityGateway,
	compensations ports.CompensationLog,
	clock kernel.Clock,
	log *logger.Logger,
) *AccountCoordinator {
	return &AccountCoordinator{
		uowFactory:    uowFactory,
		identity:      identity,
		compensations: compensations,
		clock:         clock,
		log:           log.With("component", "account_coordinator"),
	}
}

// Register creates the account and its owner.
//
// Errors:
//   - errs.ConflictError when the e-mail already has an owner
//   - errs.ValidationError with the identity store's messages
//   - errs.FatalInconsistencyError when the owner could not be stored after
//     the account was created
func (c *AccountCoordinator) Register(ctx context.Context, cmd commands.RegisterOwnerCommand) (*owner.Owner, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := c.uowFactory.Create()
	defer uow.Rollback(ctx)

	ownerRepo := uow.OwnerRepository()

	exists, err := ownerRepo.ExistsByEmail(ctx, cmd.Email())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewConflictErrorWithCause(ErrEmailAlreadyRegistered.Error(), ErrEmailAlreadyRegistered)
	}

	aggregate, err := owner.NewOwner(cmd.OwnerID(), cmd.Name(), cmd.Email(), c.clock.Now())
	if err != nil {
		return nil, errs.Validation(err)
	}

	result := c.identity.CreateAccount(ctx, cmd.Name(), cmd.Email(), cmd.Secret())
	if !result.Succeeded {
		c.log.Info("identity store rejected registration", "email", cmd.Email(), "errors", result.Errors)
		return nil, errs.NewValidationError(result.Errors...)
	}
	c.log.Debug("identity account created", "email", cmd.Email())

	if err = ownerRepo.Add(ctx, aggregate); err != nil {
		return nil, c.diverged(ctx, "register owner", aggregate, err)
	}

	ok, err := uow.Commit(ctx)
	if err == nil && !ok {
		err = commands.ErrNothingCommitted
	}
	if err != nil {
		return nil, c.diverged(ctx, "register owner", aggregate, err)
	}

	c.log.Info("owner registered", "owner_id", aggregate.ID().String(), "email", aggregate.Email())
	return aggregate, nil
}

// Remove deletes the owner with its library, then the identity account.
//
// Errors:
//   - errs.ObjectNotFoundError when there is no such owner
//   - errs.FatalInconsistencyError when either store failed to delete
func (c *AccountCoordinator) Remove(ctx context.Context, cmd commands.RemoveOwnerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := c.uowFactory.Create()
	defer uow.Rollback(ctx)

	ownerRepo := uow.OwnerRepository()

	aggregate, err := ownerRepo.Get(ctx, cmd.OwnerID())
	if err != nil {
		return err
	}

	if err = ownerRepo.Remove(ctx, aggregate); err != nil {
		return err
	}

	ok, err := uow.Commit(ctx)
	if err == nil && !ok {
		err = commands.ErrNothingCommitted
	}
	if err != nil {
		c.log.Error("owner removal was not committed", "owner_id", aggregate.ID().String(), "error", err)
		return errs.NewFatalInconsistencyError("remove owner", err)
	}

	result := c.identity.DeleteAccount(ctx, aggregate.Email())
	if !result.Succeeded && result.HasError(ports.MsgAccountNotFound) {
		c.log.Warn("owner had no identity account", "email", aggregate.Email())
		return nil
	}
	if !result.Succeeded {
		cause := identityError(result)
		return c.diverged(ctx, "remove owner", aggregate, cause)
	}

	c.log.Info("owner removed", "owner_id", aggregate.ID().String(), "email", aggregate.Email())
	return nil
}

// SetRoles replaces the roles of the owner's account.
func (c *AccountCoordinator) SetRoles(ctx context.Context, cmd commands.SetRolesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := c.uowFactory.Create()
	defer uow.Rollback(ctx)

	aggregate, err := uow.OwnerRepository().Get(ctx, cmd.OwnerID())
	if err != nil {
		return err
	}

	result := c.identity.SetRoles(ctx, aggregate.Email(), cmd.Roles())
	if !result.Succeeded {
		cause := identityError(result)
		c.log.Error("roles were not applied", "email", aggregate.Email(), "error", cause)
		return errs.NewFatalInconsistencyError("set roles", cause)
	}

	c.log.Info("roles replaced", "email", aggregate.Email(), "roles", cmd.Roles())
	return nil
}

// diverged logs a state where the identity account exists without an owner
// and records its compensation. Failing to record is logged as well.
func (c *AccountCoordinator) diverged(ctx context.Context, operation string, aggregate *owner.Owner, cause error) error {
	c.log.Error("identity and domain stores diverged",
		"operation", operation,
		"email", aggregate.Email(),
		"error", cause,
	)

	record, err := compensation.NewCompensation(
		kernel.NewUUID(),
		compensation.KindDeleteIdentityAccount,
		aggregate.Email(),
		map[string]any{
			"operation": operation,
			"owner_id":  aggregate.ID().String(),
			"cause":     cause.Error(),
		},
		c.clock.Now(),
	)
	if err == nil {
		err = c.compensations.Record(ctx, record)
	}
	if err != nil {
		c.log.Error("compensation was not recorded", "operation", operation, "email", aggregate.Email(), "error", err)
	}

	return errs.NewFatalInconsistencyError(operation, cause)
}

func identityError(result ports.Result) error {
	if len(result.Errors) == 0 {
		return ErrIdentityRejected
	}
	return errors.Join(ErrIdentityRejected, errs.NewValidationError(result.Errors...))
}
