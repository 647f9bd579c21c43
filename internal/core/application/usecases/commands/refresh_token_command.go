package commands

import (
	"errors"
	"strings"

	"gamestore/internal/pkg/errs"
	"gamestore/internal/pkg/guard"
)

var ErrRefreshTokenCommandIsNotConstructed = errors.New(
	"RefreshTokenCommand must be created via NewRefreshTokenCommand constructor",
)

// RefreshTokenCommand trades a refresh token for a new token pair.
type RefreshTokenCommand struct { //nolint:recvcheck //using for validation
	refreshToken string

	guard guard.ConstructorGuard
}

func NewRefreshTokenCommand(refreshToken string) (RefreshTokenCommand, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return RefreshTokenCommand{}, errs.Validation(errs.NewValueIsRequiredError("refresh token"))
	}

	return RefreshTokenCommand{
		refreshToken: refreshToken,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c RefreshTokenCommand) Validate() error {
	return c.guard.Validate(ErrRefreshTokenCommandIsNotConstructed)
}

func (c RefreshTokenCommand) RefreshToken() string {
	return c.refreshToken
}
