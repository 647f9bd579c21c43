package ports

import (
	"context"

	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/core/domain/model/owner"
)

// OwnerRepository defines the persistence contract for owner aggregates and
// their library entries.
type OwnerRepository interface {
	// Add registers a new owner with its library for insertion.
	Add(ctx context.Context, aggregate *owner.Owner) error

	// Update registers the owner's state. The stored library is replaced by
	// the aggregate's library: missing entries are deleted, new ones inserted
	// and the promotion reference of the rest rewritten.
	Update(ctx context.Context, aggregate *owner.Owner) error

	// Remove registers the deletion of the owner's entries and then the owner.
	Remove(ctx context.Context, aggregate *owner.Owner) error

	Get(ctx context.Context, id kernel.UUID) (*owner.Owner, error)

	// GetByEmail looks the owner up by normalized e-mail.
	GetByEmail(ctx context.Context, email string) (*owner.Owner, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ListHoldingGame returns every owner with the game in its library.
	ListHoldingGame(ctx context.Context, gameID kernel.UUID) ([]*owner.Owner, error)

	// ListReferencingPromotion returns every owner with an entry bought
	// under the promotion.
	ListReferencingPromotion(ctx context.Context, promotionID kernel.UUID) ([]*owner.Owner, error)
}
