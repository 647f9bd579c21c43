package queries

import (
	"errors"

	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/pkg/errs"
	"gamestore/internal/pkg/guard"
)

var ErrGetGameQueryIsNotConstructed = errors.New(
	"GetGameQuery must be created via NewGetGameQuery constructor",
)

type GetGameQuery struct {
	gameID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetGameQuery(gameID kernel.UUID) (GetGameQuery, error) {
	if err := gameID.Validate(); err != nil {
		return GetGameQuery{}, errs.Validation(errs.NewValueIsRequiredErrorWithCause("game id", err))
	}
	return GetGameQuery{gameID: gameID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetGameQuery) Validate() error {
	return q.guard.Validate(ErrGetGameQueryIsNotConstructed)
}
