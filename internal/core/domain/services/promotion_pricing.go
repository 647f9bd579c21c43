package services

import (
	"errors"
	"time"

	"gamestore/internal/core/domain/model/game"
	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/core/domain/model/promotion"
)

var (
	// ErrItemNotFound is returned when the game a promotion refers to could
	// not be resolved.
	ErrItemNotFound = errors.New("game not found")

	// ErrPriceNotBelowBase is returned when a promotional price is not
	// strictly lower than the game's current base price.
	ErrPriceNotBelowBase = errors.New("promotion price must be lower than the game price")

	// ErrOverlapConflict is returned when an active promotion of the same
	// game lies entirely inside the proposed period.
	ErrOverlapConflict = errors.New("an active promotion already exists within this period")
)

// EffectivePrice is the price that applies at a given instant. PromotionID is
// nil when the base price applies.
type EffectivePrice struct {
	Price       kernel.Money
	PromotionID *kernel.UUID
}

// IsPromotional reports whether a promotion produced the price.
func (p EffectivePrice) IsPromotional() bool {
	return p.PromotionID != nil
}

// PromotionPricing is the domain service behind promotional prices.
//
// Business rules:
//   - only Active promotions whose period covers the instant apply
//   - among applicable promotions the one ending first wins; on equal ends
//     the first encountered wins
//   - a promotion price must stay below the base price of its game
//   - a new promotion may not enclose an active promotion of the same game
//
// Example usage:
//
//	pricing := services.NewPromotionPricing()
//	eff := pricing.ResolveEffectivePrice(g, clock.Now())
//	if eff.IsPromotional() {
//	    // eff.Price came from *eff.PromotionID
//	}
type PromotionPricing struct{}

func NewPromotionPricing() PromotionPricing {
	return PromotionPricing{}
}

// ResolveEffectivePrice applies Resolve to a loaded game.
func (s PromotionPricing) ResolveEffectivePrice(item *game.Game, now time.Time) EffectivePrice {
	return s.Resolve(item.Price(), item.Promotions(), now)
}

// Resolve picks the price for base and promotions at now.
func (s PromotionPricing) Resolve(base kernel.Money, promotions []*promotion.Promotion, now time.Time) EffectivePrice {
	var best *promotion.Promotion
	for _, p := range promotions {
		if p == nil || !p.IsActive() || !p.Covers(now) {
			continue
		}
		if best == nil || p.EndsAt().Before(best.EndsAt()) {
			best = p
		}
	}

	if best == nil {
		return EffectivePrice{Price: base}
	}

	id := best.ID()
	return EffectivePrice{Price: best.Price(), PromotionID: &id}
}

// ValidateNewPromotion checks a promotion about to be created for item.
//
// Only siblings contained in [start, end] conflict; a sibling that merely
// straddles a boundary is accepted and resolved by the earliest-end rule.
func (s PromotionPricing) ValidateNewPromotion(item *game.Game, price kernel.Money, start, end time.Time) error {
	if item == nil {
		return ErrItemNotFound
	}
	if !price.LessThan(item.Price()) {
		return ErrPriceNotBelowBase
	}

	for _, existing := range item.Promotions() {
		if !existing.IsActive() {
			continue
		}
		if !existing.StartsAt().Before(start) && !existing.EndsAt().After(end) {
			return ErrOverlapConflict
		}
	}

	return nil
}

// ValidateEditedPromotion checks a new price for an existing promotion
// against the current base price of its game. Periods of edited promotions
// are not re-checked for overlap.
func (s PromotionPricing) ValidateEditedPromotion(item *game.Game, edited *promotion.Promotion, newPrice kernel.Money) error {
	if item == nil {
		return ErrItemNotFound
	}
	if err := edited.Validate(); err != nil {
		return err
	}
	if !newPrice.LessThan(item.Price()) {
		return ErrPriceNotBelowBase
	}
	return nil
}
