package http

import (
	"time"

	"gamestore/internal/core/application/usecases/commands"
	"gamestore/internal/core/application/usecases/queries"
	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Error is the body of every failed response.
type Error struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

type Created struct {
	ID uuid.UUID `json:"id"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type Tokens struct {
	AccessToken      string    `json:"accessToken"`
	AccessExpiresAt  time.Time `json:"accessExpiresAt"`
	RefreshToken     string    `json:"refreshToken"`
	RefreshExpiresAt time.Time `json:"refreshExpiresAt"`
}

func toTokens(result ports.TokenResult) Tokens {
	return Tokens{
		AccessToken:      result.AccessToken,
		AccessExpiresAt:  result.AccessExpiresAt,
		RefreshToken:     result.RefreshToken,
		RefreshExpiresAt: result.RefreshExpiresAt,
	}
}

type RegisterOwnerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SetRolesRequest struct {
	Roles []string `json:"roles" validate:"required,min=1,dive,required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type Owner struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	GamesOwned int        `json:"gamesOwned"`
	CreatedAt  time.Time  `json:"createdAt"`
	ModifiedAt *time.Time `json:"modifiedAt,omitempty"`
}

func toOwner(item queries.OwnerListItem) Owner {
	return Owner{
		ID:         item.ID.Bytes(),
		Name:       item.Name,
		Email:      item.Email,
		GamesOwned: item.GamesOwned,
		CreatedAt:  item.CreatedAt,
		ModifiedAt: item.ModifiedAt,
	}
}

// GameRequest creates or replaces a game. Price is a decimal string or number.
type GameRequest struct {
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Publisher   *string         `json:"publisher"`
	ReleaseDate *time.Time      `json:"releaseDate"`
	Price       decimal.Decimal `json:"price"`
}

type StatusRequest struct {
	Active *bool `json:"active" validate:"required"`
}

type Game struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Publisher      *string    `json:"publisher,omitempty"`
	ReleaseDate    *time.Time `json:"releaseDate,omitempty"`
	BasePrice      string     `json:"basePrice"`
	EffectivePrice string     `json:"effectivePrice"`
	PromotionID    *uuid.UUID `json:"promotionId,omitempty"`
	Active         bool       `json:"active"`
}

type GameDetails struct {
	Game
	Description *string     `json:"description,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	ModifiedAt  *time.Time  `json:"modifiedAt,omitempty"`
	Promotions  []Promotion `json:"promotions"`
}

func toGame(item queries.GameListItem) Game {
	return Game{
		ID:             item.ID.Bytes(),
		Name:           item.Name,
		Publisher:      item.Publisher,
		ReleaseDate:    item.ReleaseDate,
		BasePrice:      item.BasePrice.String(),
		EffectivePrice: item.EffectivePrice.String(),
		PromotionID:    toOptionalUUID(item.PromotionID),
		Active:         item.Active,
	}
}

func toGameDetails(details queries.GameDetails) GameDetails {
	promotions := make([]Promotion, 0, len(details.Promotions))
	for _, p := range details.Promotions {
		promotions = append(promotions, toPromotion(p, ""))
	}
	return GameDetails{
		Game:        toGame(details.GameListItem),
		Description: details.Description,
		CreatedAt:   details.CreatedAt,
		ModifiedAt:  details.ModifiedAt,
		Promotions:  promotions,
	}
}

type PromotionRequest struct {
	GameID   uuid.UUID       `json:"gameId"   validate:"required"`
	Price    decimal.Decimal `json:"price"`
	StartsAt time.Time       `json:"startsAt" validate:"required"`
	EndsAt   time.Time       `json:"endsAt"   validate:"required"`
}

type AlterPromotionRequest struct {
	Price    decimal.Decimal `json:"price"`
	StartsAt time.Time       `json:"startsAt" validate:"required"`
	EndsAt   time.Time       `json:"endsAt"   validate:"required"`
}

type Promotion struct {
	ID         uuid.UUID  `json:"id"`
	GameID     uuid.UUID  `json:"gameId"`
	GameName   string     `json:"gameName,omitempty"`
	Price      string     `json:"price"`
	StartsAt   time.Time  `json:"startsAt"`
	EndsAt     time.Time  `json:"endsAt"`
	Active     bool       `json:"active"`
	CreatedAt  time.Time  `json:"createdAt"`
	ModifiedAt *time.Time `json:"modifiedAt,omitempty"`
}

func toPromotion(view queries.PromotionView, gameName string) Promotion {
	return Promotion{
		ID:         view.ID.Bytes(),
		GameID:     view.GameID.Bytes(),
		GameName:   gameName,
		Price:      view.Price.String(),
		StartsAt:   view.StartsAt,
		EndsAt:     view.EndsAt,
		Active:     view.Active,
		CreatedAt:  view.CreatedAt,
		ModifiedAt: view.ModifiedAt,
	}
}

type AcquireRequest struct {
	GameID uuid.UUID `json:"gameId" validate:"required"`
}

type AcquiredGame struct {
	EntryID     uuid.UUID  `json:"entryId"`
	GameID      uuid.UUID  `json:"gameId"`
	GameName    string     `json:"gameName"`
	Price       string     `json:"price"`
	PromotionID *uuid.UUID `json:"promotionId,omitempty"`
}

func toAcquiredGame(acquired commands.AcquiredGame) AcquiredGame {
	return AcquiredGame{
		EntryID:     acquired.EntryID.Bytes(),
		GameID:      acquired.GameID.Bytes(),
		GameName:    acquired.GameName,
		Price:       acquired.Price.String(),
		PromotionID: toOptionalUUID(acquired.PromotionID),
	}
}

type LibraryItem struct {
	EntryID       uuid.UUID  `json:"entryId"`
	GameID        uuid.UUID  `json:"gameId"`
	GameName      string     `json:"gameName"`
	PurchasePrice string     `json:"purchasePrice"`
	PromotionID   *uuid.UUID `json:"promotionId,omitempty"`
	AcquiredAt    time.Time  `json:"acquiredAt"`
}

func toLibraryItem(item queries.LibraryItem) LibraryItem {
	return LibraryItem{
		EntryID:       item.EntryID.Bytes(),
		GameID:        item.GameID.Bytes(),
		GameName:      item.GameName,
		PurchasePrice: item.PurchasePrice.String(),
		PromotionID:   toOptionalUUID(item.PromotionID),
		AcquiredAt:    item.AcquiredAt,
	}
}

type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
}

func toPage[S, T any](page queries.Page[S], convert func(S) T) Page[T] {
	items := make([]T, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, convert(item))
	}
	return Page[T]{
		Items:      items,
		Page:       page.Page,
		Size:       page.Size,
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
	}
}

func toOptionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	converted := id.Bytes()
	return &converted
}
