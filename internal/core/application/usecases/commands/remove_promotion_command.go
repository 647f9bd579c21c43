package commands

import (
	"errors"

	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/pkg/errs"
	"gamestore/internal/pkg/guard"
)

var ErrRemovePromotionCommandIsNotConstructed = errors.New(
	"RemovePromotionCommand must be created via NewRemovePromotionCommand constructor",
)

type RemovePromotionCommand struct { //nolint:recvcheck //using for validation
	promotionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemovePromotionCommand(promotionID kernel.UUID) (RemovePromotionCommand, error) {
	command := RemovePromotionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errs.Validation(command.setPromotionID(promotionID)); err != nil {
		return RemovePromotionCommand{}, err
	}

	return command, nil
}

func (c RemovePromotionCommand) Validate() error {
	return c.guard.Validate(ErrRemovePromotionCommandIsNotConstructed)
}

func (c RemovePromotionCommand) PromotionID() kernel.UUID {
	return c.promotionID
}

func (c *RemovePromotionCommand) setPromotionID(id kernel.UUID) error {
	if err := checkID("promotion id", id); err != nil {
		return err
	}
	c.promotionID = id
	return nil
}
