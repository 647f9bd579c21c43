package commands

import (
	"errors"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"gamestore/internal/core/domain/model/game"
	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/core/domain/model/owner"
	"gamestore/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

const (
	SecretMinLength = 8
	SecretMaxLength = 40

	secretSpecialChars = "!@#$%^&*()_+[]{}|;:,.<>?"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func checkName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n > game.NameMaxLength {
		return errs.NewValueIsOutOfRangeError("name length", n, 1, game.NameMaxLength)
	}
	return nil
}

func checkEmail(email string) error {
	email = owner.NormalizeEmail(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if n := utf8.RuneCountInString(email); n > owner.EmailMaxLength {
		return errs.NewValueIsOutOfRangeError("email length", n, 1, owner.EmailMaxLength)
	}
	if err := validate.Var(email, "email"); err != nil {
		return errs.NewValueIsInvalidError("email")
	}
	return nil
}

// checkSecret enforces the password policy: 8 to 40 characters with an upper
// and a lower case letter, a digit and one of secretSpecialChars.
func checkSecret(param, secret string) error {
	if strings.TrimSpace(secret) == "" {
		return errs.NewValueIsRequiredError(param)
	}
	if n := utf8.RuneCountInString(secret); n > SecretMaxLength {
		return errs.NewValueIsOutOfRangeError(param+" length", n, SecretMinLength, SecretMaxLength)
	}

	var upper, lower, digit, special bool
	for _, r := range secret {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(secretSpecialChars, r):
			special = true
		}
	}
	if utf8.RuneCountInString(secret) < SecretMinLength || !upper || !lower || !digit || !special {
		return errs.NewValueIsInvalidError(
			param + " must have at least 8 characters, an upper case letter, a lower case letter, a digit and a special character",
		)
	}
	return nil
}

func checkID(param string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(param, err)
	}
	return nil
}

func checkProfile(profile game.Profile) error {
	var errList []error
	if profile.Description != nil {
		if n := utf8.RuneCountInString(strings.TrimSpace(*profile.Description)); n > game.DescriptionMaxLength {
			errList = append(errList, errs.NewValueIsOutOfRangeError("description length", n, 0, game.DescriptionMaxLength))
		}
	}
	if profile.Publisher != nil {
		if n := utf8.RuneCountInString(strings.TrimSpace(*profile.Publisher)); n > game.PublisherMaxLength {
			errList = append(errList, errs.NewValueIsOutOfRangeError("publisher length", n, 0, game.PublisherMaxLength))
		}
	}
	return errors.Join(errList...)
}

func checkPeriod(startsAt, endsAt time.Time) error {
	if startsAt.IsZero() {
		return errs.NewValueIsRequiredError("start date")
	}
	if endsAt.IsZero() {
		return errs.NewValueIsRequiredError("end date")
	}
	if !endsAt.After(startsAt) {
		return errs.NewValueIsInvalidError("end date must be after the start date")
	}
	return nil
}
