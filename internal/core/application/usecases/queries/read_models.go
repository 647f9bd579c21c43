package queries

import (
	"time"

	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/core/domain/model/promotion"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GameListItem is a catalog entry with the price a buyer would pay now.
type GameListItem struct {
	ID             kernel.UUID
	Name           string
	Publisher      *string
	ReleaseDate    *time.Time
	BasePrice      kernel.Money
	EffectivePrice kernel.Money
	PromotionID    *kernel.UUID
	Active         bool
}

// GameDetails is a game with all of its promotions.
type GameDetails struct {
	GameListItem
	Description *string
	CreatedAt   time.Time
	ModifiedAt  *time.Time
	Promotions  []PromotionView
}

type PromotionView struct {
	ID         kernel.UUID
	GameID     kernel.UUID
	Price      kernel.Money
	StartsAt   time.Time
	EndsAt     time.Time
	Active     bool
	CreatedAt  time.Time
	ModifiedAt *time.Time
}

type PromotionListItem struct {
	PromotionView
	GameName string
}

type OwnerListItem struct {
	ID         kernel.UUID
	Name       string
	Email      string
	GamesOwned int
	CreatedAt  time.Time
	ModifiedAt *time.Time
}

// LibraryItem is an acquired game with the price captured at acquisition.
type LibraryItem struct {
	EntryID       kernel.UUID
	GameID        kernel.UUID
	GameName      string
	PurchasePrice kernel.Money
	PromotionID   *kernel.UUID
	AcquiredAt    time.Time
}

type gameRow struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Publisher   *string
	ReleaseDate *time.Time
	Price       decimal.Decimal
	Active      bool
	CreatedAt   time.Time
	ModifiedAt  *time.Time
}

type promotionRow struct {
	ID         uuid.UUID
	GameID     uuid.UUID
	GameName   string
	Price      decimal.Decimal
	StartsAt   time.Time
	EndsAt     time.Time
	Active     bool
	CreatedAt  time.Time
	ModifiedAt *time.Time
}

type ownerRow struct {
	ID         uuid.UUID
	Name       string
	Email      string
	GamesOwned int
	CreatedAt  time.Time
	ModifiedAt *time.Time
}

type libraryRow struct {
	ID            uuid.UUID
	GameID        uuid.UUID
	GameName      string
	PurchasePrice decimal.Decimal
	PromotionID   *uuid.UUID
	CreatedAt     time.Time
}

func toUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toOptionalUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := toUUID(*id)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

func (r promotionRow) toView() (PromotionView, error) {
	id, err := toUUID(r.ID)
	if err != nil {
		return PromotionView{}, err
	}
	gameID, err := toUUID(r.GameID)
	if err != nil {
		return PromotionView{}, err
	}
	price, err := kernel.NewMoney(r.Price)
	if err != nil {
		return PromotionView{}, err
	}
	return PromotionView{
		ID:         id,
		GameID:     gameID,
		Price:      price,
		StartsAt:   r.StartsAt,
		EndsAt:     r.EndsAt,
		Active:     r.Active,
		CreatedAt:  r.CreatedAt,
		ModifiedAt: r.ModifiedAt,
	}, nil
}

// toDomain feeds the pricing engine, which works on promotion entities.
func (v PromotionView) toDomain() (*promotion.Promotion, error) {
	return promotion.RestorePromotion(
		v.ID,
		v.GameID,
		v.Price,
		v.StartsAt,
		v.EndsAt,
		promotion.StatusFromActive(v.Active),
		v.CreatedAt,
		v.ModifiedAt,
	)
}

func (r ownerRow) toItem() (OwnerListItem, error) {
	id, err := toUUID(r.ID)
	if err != nil {
		return OwnerListItem{}, err
	}
	return OwnerListItem{
		ID:         id,
		Name:       r.Name,
		Email:      r.Email,
		GamesOwned: r.GamesOwned,
		CreatedAt:  r.CreatedAt,
		ModifiedAt: r.ModifiedAt,
	}, nil
}

func (r libraryRow) toItem() (LibraryItem, error) {
	id, err := toUUID(r.ID)
	if err != nil {
		return LibraryItem{}, err
	}
	gameID, err := toUUID(r.GameID)
	if err != nil {
		return LibraryItem{}, err
	}
	promotionID, err := toOptionalUUID(r.PromotionID)
	if err != nil {
		return LibraryItem{}, err
	}
	price, err := kernel.NewMoney(r.PurchasePrice)
	if err != nil {
		return LibraryItem{}, err
	}
	return LibraryItem{
		EntryID:       id,
		GameID:        gameID,
		GameName:      r.GameName,
		PurchasePrice: price,
		PromotionID:   promotionID,
		AcquiredAt:    r.CreatedAt,
	}, nil
}
