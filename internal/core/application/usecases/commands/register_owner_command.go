package commands

import (
	"errors"
	"strings"

	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/core/domain/model/owner"
	"gamestore/internal/pkg/errs"
	"gamestore/internal/pkg/guard"
)

var ErrRegisterOwnerCommandIsNotConstructed = errors.New(
	"RegisterOwnerCommand must be created via NewRegisterOwnerCommand constructor",
)

// RegisterOwnerCommand creates an account in the identity store and the
// matching owner in the domain store. The secret only travels to the
// identity store.
type RegisterOwnerCommand struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID
	name    string
	email   string
	secret  string

	guard guard.ConstructorGuard
}

// NewRegisterOwnerCommand checks the name, the e-mail format and the password
// policy.
//
// Example:
//
//	cmd, err := NewRegisterOwnerCommand("Ana", "ana@example.com", "Secr3t!pass")
//	if err != nil {
//	    return err
//	}
//	owner, err := coordinator.Register(ctx, cmd)
func NewRegisterOwnerCommand(name, email, secret string) (RegisterOwnerCommand, error) {
	command := RegisterOwnerCommand{
		ownerID: kernel.NewUUID(),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errs.Validation(
		command.setName(name),
		command.setEmail(email),
		command.setSecret(secret),
	); err != nil {
		return RegisterOwnerCommand{}, err
	}

	return command, nil
}

func (c RegisterOwnerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterOwnerCommandIsNotConstructed)
}

func (c RegisterOwnerCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c RegisterOwnerCommand) Name() string {
	return c.name
}

// Email is already normalized.
func (c RegisterOwnerCommand) Email() string {
	return c.email
}

func (c RegisterOwnerCommand) Secret() string {
	return c.secret
}

func (c *RegisterOwnerCommand) setName(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	c.name = strings.TrimSpace(name)
	return nil
}

func (c *RegisterOwnerCommand) setEmail(email string) error {
	if err := checkEmail(email); err != nil {
		return err
	}
	c.email = owner.NormalizeEmail(email)
	return nil
}

func (c *RegisterOwnerCommand) setSecret(secret string) error {
	if err := checkSecret("password", secret); err != nil {
		return err
	}
	c.secret = secret
	return nil
}
