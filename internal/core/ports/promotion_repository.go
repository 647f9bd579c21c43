package ports

import (
	"context"
	"time"

	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/core/domain/model/promotion"
)

// PromotionRepository defines the persistence contract for promotions.
type PromotionRepository interface {
	Add(ctx context.Context, p *promotion.Promotion) error
	Update(ctx context.Context, p *promotion.Promotion) error

	// Remove registers the deletion of the promotion. Library entries that
	// reference it must have been detached by the caller.
	Remove(ctx context.Context, p *promotion.Promotion) error

	// Get returns errs.ObjectNotFoundError when no promotion has the id.
	Get(ctx context.Context, id kernel.UUID) (*promotion.Promotion, error)

	// HasOverlappingPromotion reports whether an active promotion of the game
	// lies entirely within [start, end].
	HasOverlappingPromotion(ctx context.Context, gameID kernel.UUID, start, end time.Time) (bool, error)
}
