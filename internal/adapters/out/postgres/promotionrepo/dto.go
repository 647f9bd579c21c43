// Package promotionrepo persists promotions in the domain store.
package promotionrepo

import (
	"time"

	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/core/domain/model/promotion"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PromotionDTO is the promotions table row.
type PromotionDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	GameID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	StartsAt   time.Time       `gorm:"type:timestamptz;not null"`
	EndsAt     time.Time       `gorm:"type:timestamptz;not null"`
	Active     bool            `gorm:"not null"`
	CreatedAt  time.Time       `gorm:"type:timestamptz;not null"`
	ModifiedAt *time.Time      `gorm:"type:timestamptz"`
}

func (PromotionDTO) TableName() string {
	return "promotions"
}

// FromDomain maps a promotion to its row.
func FromDomain(p *promotion.Promotion) PromotionDTO {
	return PromotionDTO{
		ID:         p.ID().Bytes(),
		GameID:     p.GameID().Bytes(),
		Price:      p.Price().Amount(),
		StartsAt:   p.StartsAt().UTC(),
		EndsAt:     p.EndsAt().UTC(),
		Active:     p.IsActive(),
		CreatedAt:  p.CreatedAt().UTC(),
		ModifiedAt: p.ModifiedAt(),
	}
}

// ToDomain rebuilds a promotion from its row.
func ToDomain(dto PromotionDTO) (*promotion.Promotion, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	gameID, err := kernel.UUIDFromBytes(dto.GameID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return promotion.RestorePromotion(
		id, gameID, price,
		dto.StartsAt.UTC(), dto.EndsAt.UTC(),
		promotion.StatusFromActive(dto.Active),
		dto.CreatedAt.UTC(), dto.ModifiedAt,
	)
}
