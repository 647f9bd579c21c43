package commands

import (
	"errors"
	"time"

	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/pkg/errs"
	"gamestore/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAlterPromotionCommandIsNotConstructed = errors.New(
	"AlterPromotionCommand must be created via NewAlterPromotionCommand constructor",
)

// AlterPromotionCommand replaces the price and the period of a promotion.
type AlterPromotionCommand struct { //nolint:recvcheck //using for validation
	promotionID kernel.UUID
	price       kernel.Money
	startsAt    time.Time
	endsAt      time.Time

	guard guard.ConstructorGuard
}

func NewAlterPromotionCommand(
	promotionID kernel.UUID,
	price decimal.Decimal,
	startsAt, endsAt time.Time,
) (AlterPromotionCommand, error) {
	command := AlterPromotionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errs.Validation(
		command.setPromotionID(promotionID),
		command.setPrice(price),
		command.setPeriod(startsAt, endsAt),
	); err != nil {
		return AlterPromotionCommand{}, err
	}

	return command, nil
}

func (c AlterPromotionCommand) Validate() error {
	return c.guard.Validate(ErrAlterPromotionCommandIsNotConstructed)
}

func (c AlterPromotionCommand) PromotionID() kernel.UUID {
	return c.promotionID
}

func (c AlterPromotionCommand) Price() kernel.Money {
	return c.price
}

func (c AlterPromotionCommand) StartsAt() time.Time {
	return c.startsAt
}

func (c AlterPromotionCommand) EndsAt() time.Time {
	return c.endsAt
}

func (c *AlterPromotionCommand) setPromotionID(id kernel.UUID) error {
	if err := checkID("promotion id", id); err != nil {
		return err
	}
	c.promotionID = id
	return nil
}

func (c *AlterPromotionCommand) setPrice(amount decimal.Decimal) error {
	price, err := kernel.NewMoney(amount)
	if err != nil {
		return err
	}
	c.price = price
	return nil
}

func (c *AlterPromotionCommand) setPeriod(startsAt, endsAt time.Time) error {
	if err := checkPeriod(startsAt, endsAt); err != nil {
		return err
	}
	c.startsAt = startsAt
	c.endsAt = endsAt
	return nil
}
