package queries

import (
	"context"

	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/core/domain/services"
	"gamestore/internal/pkg/errs"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetGameQueryHandler returns a game, every promotion it has regardless of
// status, and its effective price now. Returns errs.ObjectNotFoundError for
// an unknown id.
type GetGameQueryHandler struct {
	db      *gorm.DB
	pricing services.PromotionPricing
	clock   kernel.Clock
}

func NewGetGameQueryHandler(db *gorm.DB, clock kernel.Clock) GetGameQueryHandler {
	return GetGameQueryHandler{
		db:      db,
		pricing: services.NewPromotionPricing(),
		clock:   clock,
	}
}

func (h GetGameQueryHandler) Handle(ctx context.Context, query GetGameQuery) (GameDetails, error) {
	if err := query.Validate(); err != nil {
		return GameDetails{}, err
	}

	var rows []gameRow
	err := scan(ctx, h.db, dialect.From("games").
		Select("id", "name", "description", "publisher", "release_date", "price", "active", "created_at", "modified_at").
		Where(goqu.C("id").Eq(query.gameID.String())).
		Limit(1), &rows)
	if err != nil {
		return GameDetails{}, err
	}
	if len(rows) == 0 {
		return GameDetails{}, errs.NewObjectNotFoundError("game id", query.gameID)
	}
	row := rows[0]

	promotions, err := loadPromotions(ctx, h.db, []uuid.UUID{row.ID}, false)
	if err != nil {
		return GameDetails{}, err
	}
	views := promotions[row.ID]

	item, err := priceGame(h.pricing, row, views, h.clock.Now())
	if err != nil {
		return GameDetails{}, err
	}

	if views == nil {
		views = make([]PromotionView, 0)
	}
	return GameDetails{
		GameListItem: item,
		Description:  row.Description,
		CreatedAt:    row.CreatedAt,
		ModifiedAt:   row.ModifiedAt,
		Promotions:   views,
	}, nil
}
