package commands

import (
	"context"
	"errors"

	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/core/domain/model/owner"
	"gamestore/internal/core/domain/services"
	"gamestore/internal/pkg/errs"
)

// ErrOwnerNotFound means a token was issued for an account that has no
// owner in the domain store.
var ErrOwnerNotFound = errors.New("no owner for the authenticated account")

// AcquiredGame describes the library entry created by an acquisition.
type AcquiredGame struct {
	EntryID     kernel.UUID
	GameID      kernel.UUID
	GameName    string
	Price       kernel.Money
	PromotionID *kernel.UUID
}

// AcquireGameCommandHandler buys a game for the authenticated owner at the
// effective price of the moment. The price is captured on the entry and
// never recomputed.
//
// Example:
//
//	cmd, _ := NewAcquireGameCommand(claims.Email, gameID)
//	acquired, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, owner.ErrAlreadyOwned):
//	    // 409
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // 404, unknown game
//	}
type AcquireGameCommandHandler struct {
	uowFactory CatalogUoWFactory
	pricing    services.PromotionPricing
	clock      kernel.Clock
}

func NewAcquireGameCommandHandler(uowFactory CatalogUoWFactory, clock kernel.Clock) AcquireGameCommandHandler {
	return AcquireGameCommandHandler{
		uowFactory: uowFactory,
		pricing:    services.NewPromotionPricing(),
		clock:      clock,
	}
}

func (h AcquireGameCommandHandler) Handle(ctx context.Context, cmd AcquireGameCommand) (AcquiredGame, error) {
	if err := cmd.Validate(); err != nil {
		return AcquiredGame{}, err
	}

	uow := h.uowFactory.Create()
	defer uow.Rollback(ctx)

	ownerRepo := uow.OwnerRepository()

	buyer, err := ownerRepo.GetByEmail(ctx, cmd.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AcquiredGame{}, errs.NewFatalInconsistencyError("acquire game", ErrOwnerNotFound)
	}
	if err != nil {
		return AcquiredGame{}, err
	}

	item, err := uow.GameRepository().Get(ctx, cmd.GameID())
	if err != nil {
		return AcquiredGame{}, err
	}

	if buyer.Owns(item.ID()) {
		return AcquiredGame{}, errs.NewConflictErrorWithCause(owner.ErrAlreadyOwned.Error(), owner.ErrAlreadyOwned)
	}

	now := h.clock.Now()
	effective := h.pricing.ResolveEffectivePrice(item, now)

	entry, err := buyer.Acquire(cmd.EntryID(), item.ID(), effective.Price, effective.PromotionID, now)
	if errors.Is(err, owner.ErrAlreadyOwned) {
		return AcquiredGame{}, errs.NewConflictErrorWithCause(err.Error(), err)
	}
	if err != nil {
		return AcquiredGame{}, err
	}

	if err = ownerRepo.Update(ctx, buyer); err != nil {
		return AcquiredGame{}, err
	}

	if err = commit(ctx, uow, "acquire game"); err != nil {
		return AcquiredGame{}, err
	}

	return AcquiredGame{
		EntryID:     entry.ID(),
		GameID:      item.ID(),
		GameName:    item.Name(),
		Price:       entry.PurchasePrice(),
		PromotionID: entry.PromotionID(),
	}, nil
}
