package queries

import (
	"errors"

	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/pkg/errs"
	"gamestore/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrSearchPromotionsQueryIsNotConstructed = errors.New(
	"SearchPromotionsQuery must be created via NewSearchPromotionsQuery constructor",
)

// PromotionFilter narrows a promotion search. Nil fields match everything;
// price bounds are inclusive.
type PromotionFilter struct {
	GameID   *kernel.UUID
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Active   *bool
}

type SearchPromotionsQuery struct {
	paging Paging
	filter PromotionFilter

	guard guard.ConstructorGuard
}

func NewSearchPromotionsQuery(paging Paging, filter PromotionFilter) (SearchPromotionsQuery, error) {
	if err := paging.validate(); err != nil {
		return SearchPromotionsQuery{}, err
	}

	var errList []error
	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		errList = append(errList, errs.NewValueIsInvalidError("min price must not exceed max price"))
	}
	if filter.GameID != nil {
		if err := filter.GameID.Validate(); err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("game id", err))
		}
	}
	if err := errs.Validation(errList...); err != nil {
		return SearchPromotionsQuery{}, err
	}

	return SearchPromotionsQuery{
		paging: paging,
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q SearchPromotionsQuery) Validate() error {
	return q.guard.Validate(ErrSearchPromotionsQueryIsNotConstructed)
}
