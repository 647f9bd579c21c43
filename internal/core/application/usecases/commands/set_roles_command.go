package commands

import (
	"errors"
	"fmt"
	"slices"

	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/core/ports"
	"gamestore/internal/pkg/errs"
	"gamestore/internal/pkg/guard"
)

var ErrSetRolesCommandIsNotConstructed = errors.New(
	"SetRolesCommand must be created via NewSetRolesCommand constructor",
)

// SetRolesCommand replaces the roles of the account behind an owner.
type SetRolesCommand struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID
	roles   []ports.Role

	guard guard.ConstructorGuard
}

// NewSetRolesCommand requires at least one role. Duplicates are dropped.
func NewSetRolesCommand(ownerID kernel.UUID, roles []ports.Role) (SetRolesCommand, error) {
	command := SetRolesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errs.Validation(
		command.setOwnerID(ownerID),
		command.setRoles(roles),
	); err != nil {
		return SetRolesCommand{}, err
	}

	return command, nil
}

func (c SetRolesCommand) Validate() error {
	return c.guard.Validate(ErrSetRolesCommandIsNotConstructed)
}

func (c SetRolesCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c SetRolesCommand) Roles() []ports.Role {
	return slices.Clone(c.roles)
}

func (c *SetRolesCommand) setOwnerID(id kernel.UUID) error {
	if err := checkID("owner id", id); err != nil {
		return err
	}
	c.ownerID = id
	return nil
}

func (c *SetRolesCommand) setRoles(roles []ports.Role) error {
	if len(roles) == 0 {
		return errs.NewValueIsRequiredError("roles")
	}

	unique := make([]ports.Role, 0, len(roles))
	for _, role := range roles {
		if !role.IsKnown() {
			return errs.NewValueIsInvalidErrorWithCause("roles", fmt.Errorf("unknown role %q", role))
		}
		if !slices.Contains(unique, role) {
			unique = append(unique, role)
		}
	}

	c.roles = unique
	return nil
}
