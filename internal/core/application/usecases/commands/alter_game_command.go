package commands

import (
	"errors"

	"gamestore/internal/core/domain/model/game"
	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/pkg/errs"
	"gamestore/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAlterGameCommandIsNotConstructed = errors.New(
	"AlterGameCommand must be created via NewAlterGameCommand constructor",
)

// AlterGameCommand replaces the name, profile and base price of a game.
type AlterGameCommand struct { //nolint:recvcheck //using for validation
	gameID  kernel.UUID
	name    string
	profile game.Profile
	price   kernel.Money

	guard guard.ConstructorGuard
}

func NewAlterGameCommand(
	gameID kernel.UUID,
	name string,
	profile game.Profile,
	price decimal.Decimal,
) (AlterGameCommand, error) {
	command := AlterGameCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errs.Validation(
		command.setGameID(gameID),
		command.setName(name),
		command.setProfile(profile),
		command.setPrice(price),
	); err != nil {
		return AlterGameCommand{}, err
	}

	return command, nil
}

func (c AlterGameCommand) Validate() error {
	return c.guard.Validate(ErrAlterGameCommandIsNotConstructed)
}

func (c AlterGameCommand) GameID() kernel.UUID {
	return c.gameID
}

func (c AlterGameCommand) Name() string {
	return c.name
}

func (c AlterGameCommand) Profile() game.Profile {
	return c.profile
}

func (c AlterGameCommand) Price() kernel.Money {
	return c.price
}

func (c *AlterGameCommand) setGameID(id kernel.UUID) error {
	if err := checkID("game id", id); err != nil {
		return err
	}
	c.gameID = id
	return nil
}

func (c *AlterGameCommand) setName(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	c.name = name
	return nil
}

func (c *AlterGameCommand) setProfile(profile game.Profile) error {
	if err := checkProfile(profile); err != nil {
		return err
	}
	c.profile = profile
	return nil
}

func (c *AlterGameCommand) setPrice(amount decimal.Decimal) error {
	price, err := kernel.NewMoney(amount)
	if err != nil {
		return err
	}
	c.price = price
	return nil
}
