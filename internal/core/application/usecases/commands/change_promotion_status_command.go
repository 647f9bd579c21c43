package commands

import (
	"errors"

	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/pkg/errs"
	"gamestore/internal/pkg/guard"
)

var ErrChangePromotionStatusCommandIsNotConstructed = errors.New(
	"ChangePromotionStatusCommand must be created via NewChangePromotionStatusCommand constructor",
)

// ChangePromotionStatusCommand moves a promotion between Active and Inactive.
type ChangePromotionStatusCommand struct { //nolint:recvcheck //using for validation
	promotionID kernel.UUID
	active      bool

	guard guard.ConstructorGuard
}

func NewChangePromotionStatusCommand(promotionID kernel.UUID, active bool) (ChangePromotionStatusCommand, error) {
	command := ChangePromotionStatusCommand{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errs.Validation(command.setPromotionID(promotionID)); err != nil {
		return ChangePromotionStatusCommand{}, err
	}

	return command, nil
}

func (c ChangePromotionStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangePromotionStatusCommandIsNotConstructed)
}

func (c ChangePromotionStatusCommand) PromotionID() kernel.UUID {
	return c.promotionID
}

func (c ChangePromotionStatusCommand) Active() bool {
	return c.active
}

func (c *ChangePromotionStatusCommand) setPromotionID(id kernel.UUID) error {
	if err := checkID("promotion id", id); err != nil {
		return err
	}
	c.promotionID = id
	return nil
}
