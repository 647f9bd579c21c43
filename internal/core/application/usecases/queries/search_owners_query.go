package queries

import (
	"errors"
	"strings"

	"gamestore/internal/pkg/guard"
)

var ErrSearchOwnersQueryIsNotConstructed = errors.New(
	"SearchOwnersQuery must be created via NewSearchOwnersQuery constructor",
)

// SearchOwnersQuery pages through owners. The filter matches the name or the
// e-mail, case-insensitively.
type SearchOwnersQuery struct {
	paging Paging
	filter *string

	guard guard.ConstructorGuard
}

func NewSearchOwnersQuery(paging Paging, filter *string) (SearchOwnersQuery, error) {
	if err := paging.validate(); err != nil {
		return SearchOwnersQuery{}, err
	}
	if filter != nil && strings.TrimSpace(*filter) == "" {
		filter = nil
	}
	return SearchOwnersQuery{
		paging: paging,
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q SearchOwnersQuery) Validate() error {
	return q.guard.Validate(ErrSearchOwnersQueryIsNotConstructed)
}
