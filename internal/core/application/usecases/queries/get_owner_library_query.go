package queries

import (
	"errors"

	"gamestore/internal/core/domain/model/owner"
	"gamestore/internal/pkg/errs"
	"gamestore/internal/pkg/guard"
)

var ErrGetOwnerLibraryQueryIsNotConstructed = errors.New(
	"GetOwnerLibraryQuery must be created via NewGetOwnerLibraryQuery constructor",
)

// GetOwnerLibraryQuery pages through the games of the owner with the given
// e-mail, most recent acquisition first.
type GetOwnerLibraryQuery struct {
	paging Paging
	email  string

	guard guard.ConstructorGuard
}

func NewGetOwnerLibraryQuery(paging Paging, email string) (GetOwnerLibraryQuery, error) {
	if err := paging.validate(); err != nil {
		return GetOwnerLibraryQuery{}, err
	}
	email = owner.NormalizeEmail(email)
	if email == "" {
		return GetOwnerLibraryQuery{}, errs.Validation(errs.NewValueIsRequiredError("email"))
	}
	return GetOwnerLibraryQuery{
		paging: paging,
		email:  email,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetOwnerLibraryQuery) Validate() error {
	return q.guard.Validate(ErrGetOwnerLibraryQueryIsNotConstructed)
}
