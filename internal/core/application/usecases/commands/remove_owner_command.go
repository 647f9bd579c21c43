package commands

import (
	"errors"

	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/pkg/errs"
	"gamestore/internal/pkg/guard"
)

var ErrRemoveOwnerCommandIsNotConstructed = errors.New(
	"RemoveOwnerCommand must be created via NewRemoveOwnerCommand constructor",
)

// RemoveOwnerCommand deletes an owner, its library and its identity account.
type RemoveOwnerCommand struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveOwnerCommand(ownerID kernel.UUID) (RemoveOwnerCommand, error) {
	command := RemoveOwnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errs.Validation(command.setOwnerID(ownerID)); err != nil {
		return RemoveOwnerCommand{}, err
	}

	return command, nil
}

func (c RemoveOwnerCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOwnerCommandIsNotConstructed)
}

func (c RemoveOwnerCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c *RemoveOwnerCommand) setOwnerID(id kernel.UUID) error {
	if err := checkID("owner id", id); err != nil {
		return err
	}
	c.ownerID = id
	return nil
}
