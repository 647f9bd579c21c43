package queries

import (
	"errors"
	"strings"

	"gamestore/internal/pkg/guard"
)

var ErrSearchGamesQueryIsNotConstructed = errors.New(
	"SearchGamesQuery must be created via NewSearchGamesQuery constructor",
)

// SearchGamesQuery pages through the catalog ordered by name. Name matches
// case-insensitively anywhere in the game name; nil filters match all.
type SearchGamesQuery struct {
	paging Paging
	name   *string
	active *bool

	guard guard.ConstructorGuard
}

func NewSearchGamesQuery(paging Paging, name *string, active *bool) (SearchGamesQuery, error) {
	if err := paging.validate(); err != nil {
		return SearchGamesQuery{}, err
	}
	if name != nil && strings.TrimSpace(*name) == "" {
		name = nil
	}
	return SearchGamesQuery{
		paging: paging,
		name:   name,
		active: active,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q SearchGamesQuery) Validate() error {
	return q.guard.Validate(ErrSearchGamesQueryIsNotConstructed)
}
