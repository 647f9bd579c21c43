// Package gamerepo persists game aggregates and loads them with their
// promotions.
package gamerepo

import (
	"time"

	"gamestore/internal/adapters/out/postgres/promotionrepo"
	"gamestore/internal/core/domain/model/game"
	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/core/domain/model/promotion"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GameDTO is the games table row. Promotions are only filled on reads.
type GameDTO struct {
	ID          uuid.UUID                    `gorm:"type:uuid;primaryKey"`
	Name        string                       `gorm:"type:varchar(256);not null;index"`
	Description *string                      `gorm:"type:varchar(512)"`
	Publisher   *string                      `gorm:"type:varchar(256)"`
	ReleaseDate *time.Time                   `gorm:"type:date"`
	Price       decimal.Decimal              `gorm:"type:numeric(12,2);not null"`
	Active      bool                         `gorm:"not null"`
	CreatedAt   time.Time                    `gorm:"type:timestamptz;not null"`
	ModifiedAt  *time.Time                   `gorm:"type:timestamptz"`
	Promotions  []promotionrepo.PromotionDTO `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}

func (GameDTO) TableName() string {
	return "games"
}

func fromDomain(g *game.Game) GameDTO {
	profile := g.Profile()

	return GameDTO{
		ID:          g.ID().Bytes(),
		Name:        g.Name(),
		Description: profile.Description,
		Publisher:   profile.Publisher,
		ReleaseDate: profile.ReleaseDate,
		Price:       g.Price().Amount(),
		Active:      g.IsActive(),
		CreatedAt:   g.CreatedAt().UTC(),
		ModifiedAt:  g.ModifiedAt(),
	}
}

func toDomain(dto GameDTO) (*game.Game, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	promotions := make([]*promotion.Promotion, 0, len(dto.Promotions))
	for _, pDto := range dto.Promotions {
		p, pErr := promotionrepo.ToDomain(pDto)
		if pErr != nil {
			return nil, pErr
		}
		promotions = append(promotions, p)
	}

	profile := game.Profile{
		Description: dto.Description,
		Publisher:   dto.Publisher,
		ReleaseDate: dto.ReleaseDate,
	}

	return game.RestoreGame(id, dto.Name, profile, price, dto.Active, dto.CreatedAt.UTC(), dto.ModifiedAt, promotions)
}
