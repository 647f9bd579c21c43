package promotion

import (
	"errors"
	"fmt"
	"time"

	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/pkg/errs"
)

var (
	// ErrPromotionIsNotConstructed is returned for a Promotion built outside
	// NewPromotion or RestorePromotion.
	ErrPromotionIsNotConstructed = errors.New("Promotion must be created via NewPromotion constructor")
)

// Promotion is a time-bounded reduced price for one game.
//
// Invariants kept by the entity itself:
//   - the period end is strictly after its start
//   - the price is a valid non-negative amount
//
// The rule "price below the game's base price" spans two aggregates and is
// enforced by services.PromotionPricing.
type Promotion struct {
	id         kernel.UUID
	gameID     kernel.UUID
	price      kernel.Money
	startsAt   time.Time
	endsAt     time.Time
	status     Status
	createdAt  time.Time
	modifiedAt *time.Time

	isConstructed bool
}

// NewPromotion creates an Active promotion stamped with now.
//
// Example:
//
//	p, err := promotion.NewPromotion(kernel.NewUUID(), gameID, kernel.MustMoney("29.90"),
//	    startsAt, endsAt, clock.Now())
//	if err != nil {
//	    return err // end before start, negative price, ...
//	}
func NewPromotion(
	id, gameID kernel.UUID,
	price kernel.Money,
	startsAt, endsAt time.Time,
	now time.Time,
) (*Promotion, error) {
	p := &Promotion{
		status:        Active,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setGameID(gameID),
		p.setPrice(price),
		p.setPeriod(startsAt, endsAt),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePromotion rebuilds a promotion from storage, re-checking invariants.
func RestorePromotion(
	id, gameID kernel.UUID,
	price kernel.Money,
	startsAt, endsAt time.Time,
	status Status,
	createdAt time.Time,
	modifiedAt *time.Time,
) (*Promotion, error) {
	p := &Promotion{
		createdAt:     createdAt,
		modifiedAt:    modifiedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setGameID(gameID),
		p.setPrice(price),
		p.setPeriod(startsAt, endsAt),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	p.status = status

	return p, nil
}

func (p *Promotion) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPromotionIsNotConstructed
	}
	return nil
}

func (p *Promotion) IsEqual(other *Promotion) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Promotion) ID() kernel.UUID {
	return p.id
}

func (p *Promotion) GameID() kernel.UUID {
	return p.gameID
}

func (p *Promotion) Price() kernel.Money {
	return p.price
}

func (p *Promotion) StartsAt() time.Time {
	return p.startsAt
}

func (p *Promotion) EndsAt() time.Time {
	return p.endsAt
}

func (p *Promotion) Status() Status {
	return p.status
}

func (p *Promotion) IsActive() bool {
	return p.status == Active
}

func (p *Promotion) CreatedAt() time.Time {
	return p.createdAt
}

// ModifiedAt is nil until the first mutation.
func (p *Promotion) ModifiedAt() *time.Time {
	return p.modifiedAt
}

// Covers reports whether t lies inside the closed interval [start, end].
func (p *Promotion) Covers(t time.Time) bool {
	return !t.Before(p.startsAt) && !t.After(p.endsAt)
}

// Alter replaces price and period. Nothing changes when validation fails.
func (p *Promotion) Alter(price kernel.Money, startsAt, endsAt time.Time, now time.Time) error {
	draft := *p
	if err := errors.Join(
		draft.setPrice(price),
		draft.setPeriod(startsAt, endsAt),
	); err != nil {
		return err
	}

	*p = draft
	p.touch(now)
	return nil
}

// Activate moves the promotion to Active. Activating an Active promotion only
// refreshes the modification time.
func (p *Promotion) Activate(now time.Time) {
	p.status = Active
	p.touch(now)
}

// Deactivate moves the promotion to Inactive.
func (p *Promotion) Deactivate(now time.Time) {
	p.status = Inactive
	p.touch(now)
}

func (p *Promotion) touch(now time.Time) {
	p.modifiedAt = &now
}

func (p *Promotion) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Promotion) setGameID(gameID kernel.UUID) error {
	if err := gameID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("game id", err)
	}
	p.gameID = gameID
	return nil
}

func (p *Promotion) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Promotion) setPeriod(startsAt, endsAt time.Time) error {
	if startsAt.IsZero() {
		return errs.NewValueIsRequiredError("start date")
	}
	if endsAt.IsZero() {
		return errs.NewValueIsRequiredError("end date")
	}
	if !endsAt.After(startsAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"end date",
			fmt.Errorf("%s is not after %s", endsAt.Format(time.RFC3339), startsAt.Format(time.RFC3339)),
		)
	}
	p.startsAt = startsAt
	p.endsAt = endsAt
	return nil
}
