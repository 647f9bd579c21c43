package commands

import (
	"errors"

	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/pkg/errs"
	"gamestore/internal/pkg/guard"
)

var ErrRemoveGameCommandIsNotConstructed = errors.New(
	"RemoveGameCommand must be created via NewRemoveGameCommand constructor",
)

type RemoveGameCommand struct { //nolint:recvcheck //using for validation
	gameID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveGameCommand(gameID kernel.UUID) (RemoveGameCommand, error) {
	command := RemoveGameCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errs.Validation(command.setGameID(gameID)); err != nil {
		return RemoveGameCommand{}, err
	}

	return command, nil
}

func (c RemoveGameCommand) Validate() error {
	return c.guard.Validate(ErrRemoveGameCommandIsNotConstructed)
}

func (c RemoveGameCommand) GameID() kernel.UUID {
	return c.gameID
}

func (c *RemoveGameCommand) setGameID(id kernel.UUID) error {
	if err := checkID("game id", id); err != nil {
		return err
	}
	c.gameID = id
	return nil
}
