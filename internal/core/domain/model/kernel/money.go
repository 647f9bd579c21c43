package kernel

import (
	"fmt"

	"gamestore/internal/pkg/errs"
	"gamestore/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits kept for prices.
const MoneyScale = 2

// ErrMoneyIsNotConstructed is returned when a zero-value Money is validated.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney or MoneyFromString")

// Money is a non-negative decimal amount rounded to MoneyScale digits.
// Base prices, promotional prices and purchase prices all use it.
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney validates a non-negative amount and rounds it to two decimal
// places.
//
// Example:
//
//	price, err := kernel.NewMoney(decimal.RequireFromString("59.90"))
//	if err != nil {
//	    return err // negative amount
//	}
func NewMoney(amount decimal.Decimal) (Money, error) {
	rounded := amount.Round(MoneyScale)
	if rounded.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%s is negative", rounded.StringFixed(MoneyScale)),
		)
	}
	return Money{amount: rounded, guard: guard.NewConstructorGuard()}, nil
}

// MoneyFromString parses a decimal text such as "19.99" into Money.
//
// Example:
//
//	price, err := kernel.MoneyFromString(c.QueryParam("min_price"))
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return NewMoney(amount)
}

// MustMoney is MoneyFromString for literals known to be valid.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

func (m Money) Validate() error {
	if err := m.guard.Validate(ErrMoneyIsNotConstructed); err != nil {
		return err
	}
	if m.amount.IsNegative() {
		return errs.NewValueIsInvalidError("price")
	}
	return nil
}
