package queries

import (
	"errors"

	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/core/domain/model/owner"
	"gamestore/internal/pkg/errs"
	"gamestore/internal/pkg/guard"
)

var ErrGetOwnerQueryIsNotConstructed = errors.New(
	"GetOwnerQuery must be created via NewGetOwnerQueryByID or NewGetOwnerQueryByEmail",
)

// GetOwnerQuery looks an owner up by id (administration) or by the e-mail
// of the authenticated account (profile).
type GetOwnerQuery struct {
	ownerID *kernel.UUID
	email   string

	guard guard.ConstructorGuard
}

func NewGetOwnerQueryByID(ownerID kernel.UUID) (GetOwnerQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetOwnerQuery{}, errs.Validation(errs.NewValueIsRequiredErrorWithCause("owner id", err))
	}
	return GetOwnerQuery{ownerID: &ownerID, guard: guard.NewConstructorGuard()}, nil
}

func NewGetOwnerQueryByEmail(email string) (GetOwnerQuery, error) {
	email = owner.NormalizeEmail(email)
	if email == "" {
		return GetOwnerQuery{}, errs.Validation(errs.NewValueIsRequiredError("email"))
	}
	return GetOwnerQuery{email: email, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOwnerQuery) Validate() error {
	return q.guard.Validate(ErrGetOwnerQueryIsNotConstructed)
}
