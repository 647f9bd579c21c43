package commands

import (
	"errors"

	"gamestore/internal/core/domain/model/game"
	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/pkg/errs"
	"gamestore/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateGameCommandIsNotConstructed = errors.New(
	"CreateGameCommand must be created via NewCreateGameCommand constructor",
)

// CreateGameCommand adds a game to the catalog. The game ID is generated by
// the constructor so the caller can report it after Handle succeeds.
//
// Example:
//
//	cmd, err := NewCreateGameCommand("Hades", game.Profile{Publisher: &publisher}, decimal.RequireFromString("49.99"))
//	if err != nil {
//	    return err // *errs.ValidationError
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
//	fmt.Printf("Created game with ID: %s", cmd.GameID())
type CreateGameCommand struct { //nolint:recvcheck //using for validation
	gameID  kernel.UUID
	name    string
	profile game.Profile
	price   kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateGameCommand validates name, profile and price. Every broken rule
// is reported in one errs.ValidationError.
func NewCreateGameCommand(name string, profile game.Profile, price decimal.Decimal) (CreateGameCommand, error) {
	command := CreateGameCommand{
		gameID: kernel.NewUUID(),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errs.Validation(
		command.setName(name),
		command.setProfile(profile),
		command.setPrice(price),
	); err != nil {
		return CreateGameCommand{}, err
	}

	return command, nil
}

func (c CreateGameCommand) Validate() error {
	return c.guard.Validate(ErrCreateGameCommandIsNotConstructed)
}

func (c CreateGameCommand) GameID() kernel.UUID {
	return c.gameID
}

func (c CreateGameCommand) Name() string {
	return c.name
}

func (c CreateGameCommand) Profile() game.Profile {
	return c.profile
}

func (c CreateGameCommand) Price() kernel.Money {
	return c.price
}

func (c *CreateGameCommand) setName(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	c.name = name
	return nil
}

func (c *CreateGameCommand) setProfile(profile game.Profile) error {
	if err := checkProfile(profile); err != nil {
		return err
	}
	c.profile = profile
	return nil
}

func (c *CreateGameCommand) setPrice(amount decimal.Decimal) error {
	price, err := kernel.NewMoney(amount)
	if err != nil {
		return err
	}
	c.price = price
	return nil
}
