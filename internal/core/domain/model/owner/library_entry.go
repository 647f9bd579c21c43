package owner

import (
	"errors"
	"time"

	"gamestore/internal/core/domain/model/kernel"
)

var (
	ErrLibraryEntryIsNotConstructed = errors.New("LibraryEntry must be created via Owner.Acquire")
)

// LibraryEntry records that an owner acquired a game at a given price.
//
// The purchase price is captured at acquisition and never recomputed. The
// only mutation is losing the promotion reference when that promotion is
// removed.
type LibraryEntry struct {
	id            kernel.UUID
	ownerID       kernel.UUID
	gameID        kernel.UUID
	purchasePrice kernel.Money
	promotionID   *kernel.UUID
	createdAt     time.Time

	isConstructed bool
}

// RestoreLibraryEntry rebuilds an entry from storage.
func RestoreLibraryEntry(
	id, ownerID, gameID kernel.UUID,
	purchasePrice kernel.Money,
	promotionID *kernel.UUID,
	createdAt time.Time,
) (*LibraryEntry, error) {
	e := &LibraryEntry{
		createdAt:     createdAt,
		isConstructed: true,
	}
	if err := e.set(id, ownerID, gameID, purchasePrice, promotionID); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *LibraryEntry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrLibraryEntryIsNotConstructed
	}
	return nil
}

func (e *LibraryEntry) ID() kernel.UUID {
	return e.id
}

func (e *LibraryEntry) OwnerID() kernel.UUID {
	return e.ownerID
}

func (e *LibraryEntry) GameID() kernel.UUID {
	return e.gameID
}

func (e *LibraryEntry) PurchasePrice() kernel.Money {
	return e.purchasePrice
}

// PromotionID is nil when the game was bought at base price or when the
// promotion has since been removed.
func (e *LibraryEntry) PromotionID() *kernel.UUID {
	if e.promotionID == nil {
		return nil
	}
	id := *e.promotionID
	return &id
}

func (e *LibraryEntry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *LibraryEntry) set(
	id, ownerID, gameID kernel.UUID,
	purchasePrice kernel.Money,
	promotionID *kernel.UUID,
) error {
	errList := []error{
		id.Validate(),
		ownerID.Validate(),
		gameID.Validate(),
		purchasePrice.Validate(),
	}
	if promotionID != nil {
		errList = append(errList, promotionID.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	e.id = id
	e.ownerID = ownerID
	e.gameID = gameID
	e.purchasePrice = purchasePrice
	if promotionID != nil {
		pid := *promotionID
		e.promotionID = &pid
	}
	return nil
}

func (e *LibraryEntry) detachPromotion() {
	e.promotionID = nil
}
