package commands

import (
	"errors"

	"gamestore/internal/core/domain/model/owner"
	"gamestore/internal/pkg/errs"
	"gamestore/internal/pkg/guard"
)

var (
	ErrChangeSecretCommandIsNotConstructed = errors.New(
		"ChangeSecretCommand must be created via NewChangeSecretCommand constructor",
	)
	ErrSecretUnchanged = errs.NewValueIsInvalidError("new password must differ from the current password")
)

// ChangeSecretCommand replaces the password of the authenticated account.
type ChangeSecretCommand struct { //nolint:recvcheck //using for validation
	email   string
	current string
	next    string

	guard guard.ConstructorGuard
}

func NewChangeSecretCommand(email, current, next string) (ChangeSecretCommand, error) {
	command := ChangeSecretCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errs.Validation(
		command.setEmail(email),
		command.setSecrets(current, next),
	); err != nil {
		return ChangeSecretCommand{}, err
	}

	return command, nil
}

func (c ChangeSecretCommand) Validate() error {
	return c.guard.Validate(ErrChangeSecretCommandIsNotConstructed)
}

func (c ChangeSecretCommand) Email() string {
	return c.email
}

func (c ChangeSecretCommand) Current() string {
	return c.current
}

func (c ChangeSecretCommand) Next() string {
	return c.next
}

func (c *ChangeSecretCommand) setEmail(email string) error {
	email = owner.NormalizeEmail(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *ChangeSecretCommand) setSecrets(current, next string) error {
	var errList []error
	if current == "" {
		errList = append(errList, errs.NewValueIsRequiredError("current password"))
	}
	if err := checkSecret("new password", next); err != nil {
		errList = append(errList, err)
	} else if next == current {
		errList = append(errList, ErrSecretUnchanged)
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	c.current = current
	c.next = next
	return nil
}
