package commands

import (
	"errors"

	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/pkg/errs"
	"gamestore/internal/pkg/guard"
)

var ErrChangeGameStatusCommandIsNotConstructed = errors.New(
	"ChangeGameStatusCommand must be created via NewChangeGameStatusCommand constructor",
)

// ChangeGameStatusCommand activates or deactivates a game.
type ChangeGameStatusCommand struct { //nolint:recvcheck //using for validation
	gameID kernel.UUID
	active bool

	guard guard.ConstructorGuard
}

func NewChangeGameStatusCommand(gameID kernel.UUID, active bool) (ChangeGameStatusCommand, error) {
	command := ChangeGameStatusCommand{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errs.Validation(command.setGameID(gameID)); err != nil {
		return ChangeGameStatusCommand{}, err
	}

	return command, nil
}

func (c ChangeGameStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeGameStatusCommandIsNotConstructed)
}

func (c ChangeGameStatusCommand) GameID() kernel.UUID {
	return c.gameID
}

func (c ChangeGameStatusCommand) Active() bool {
	return c.active
}

func (c *ChangeGameStatusCommand) setGameID(id kernel.UUID) error {
	if err := checkID("game id", id); err != nil {
		return err
	}
	c.gameID = id
	return nil
}
