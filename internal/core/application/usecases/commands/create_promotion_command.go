package commands

import (
	"errors"
	"time"

	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/pkg/errs"
	"gamestore/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreatePromotionCommandIsNotConstructed = errors.New(
	"CreatePromotionCommand must be created via NewCreatePromotionCommand constructor",
)

// CreatePromotionCommand schedules a reduced price for a game over the
// closed interval [startsAt, endsAt].
type CreatePromotionCommand struct { //nolint:recvcheck //using for validation
	promotionID kernel.UUID
	gameID      kernel.UUID
	price       kernel.Money
	startsAt    time.Time
	endsAt      time.Time

	guard guard.ConstructorGuard
}

// NewCreatePromotionCommand validates the price and the period. The id of
// the new promotion is generated here and exposed by PromotionID.
//
// Example:
//
//	cmd, err := NewCreatePromotionCommand(gameID, decimal.RequireFromString("29.90"),
//	    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
//	    time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
//	)
//	if err != nil {
//	    return err // every problem is listed in the validation error
//	}
func NewCreatePromotionCommand(
	gameID kernel.UUID,
	price decimal.Decimal,
	startsAt, endsAt time.Time,
) (CreatePromotionCommand, error) {
	command := CreatePromotionCommand{
		promotionID: kernel.NewUUID(),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errs.Validation(
		command.setGameID(gameID),
		command.setPrice(price),
		command.setPeriod(startsAt, endsAt),
	); err != nil {
		return CreatePromotionCommand{}, err
	}

	return command, nil
}

func (c CreatePromotionCommand) Validate() error {
	return c.guard.Validate(ErrCreatePromotionCommandIsNotConstructed)
}

func (c CreatePromotionCommand) PromotionID() kernel.UUID {
	return c.promotionID
}

func (c CreatePromotionCommand) GameID() kernel.UUID {
	return c.gameID
}

func (c CreatePromotionCommand) Price() kernel.Money {
	return c.price
}

func (c CreatePromotionCommand) StartsAt() time.Time {
	return c.startsAt
}

func (c CreatePromotionCommand) EndsAt() time.Time {
	return c.endsAt
}

func (c *CreatePromotionCommand) setGameID(id kernel.UUID) error {
	if err := checkID("game id", id); err != nil {
		return err
	}
	c.gameID = id
	return nil
}

func (c *CreatePromotionCommand) setPrice(amount decimal.Decimal) error {
	price, err := kernel.NewMoney(amount)
	if err != nil {
		return err
	}
	c.price = price
	return nil
}

func (c *CreatePromotionCommand) setPeriod(startsAt, endsAt time.Time) error {
	if err := checkPeriod(startsAt, endsAt); err != nil {
		return err
	}
	c.startsAt = startsAt
	c.endsAt = endsAt
	return nil
}
