package commands

import (
	"errors"

	"gamestore/internal/core/domain/model/owner"
	"gamestore/internal/pkg/errs"
	"gamestore/internal/pkg/guard"
)

var ErrAuthenticateCommandIsNotConstructed = errors.New(
	"AuthenticateCommand must be created via NewAuthenticateCommand constructor",
)

// AuthenticateCommand is a login attempt.
type AuthenticateCommand struct { //nolint:recvcheck //using for validation
	email  string
	secret string

	guard guard.ConstructorGuard
}

func NewAuthenticateCommand(email, secret string) (AuthenticateCommand, error) {
	command := AuthenticateCommand{
		email:  owner.NormalizeEmail(email),
		secret: secret,
		guard:  guard.NewConstructorGuard(),
	}

	var errList []error
	if command.email == "" {
		errList = append(errList, errs.NewValueIsRequiredError("email"))
	}
	if secret == "" {
		errList = append(errList, errs.NewValueIsRequiredError("password"))
	}
	if err := errs.Validation(errList...); err != nil {
		return AuthenticateCommand{}, err
	}

	return command, nil
}

func (c AuthenticateCommand) Validate() error {
	return c.guard.Validate(ErrAuthenticateCommandIsNotConstructed)
}

func (c AuthenticateCommand) Email() string {
	return c.email
}

func (c AuthenticateCommand) Secret() string {
	return c.secret
}
