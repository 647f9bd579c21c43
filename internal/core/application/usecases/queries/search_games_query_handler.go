package queries

import (
	"context"
	"time"

	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/core/domain/model/promotion"
	"gamestore/internal/core/domain/services"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchGamesQueryHandler lists games with their effective price at the
// clock's current time.
//
// Example:
//
//	paging, _ := NewPaging(1, 20)
//	name := "knight"
//	query, _ := NewSearchGamesQuery(paging, &name, nil)
//	page, err := handler.Handle(ctx, query)
//	for _, g := range page.Items {
//	    fmt.Println(g.Name, g.EffectivePrice)
//	}
type SearchGamesQueryHandler struct {
	db      *gorm.DB
	pricing services.PromotionPricing
	clock   kernel.Clock
}

func NewSearchGamesQueryHandler(db *gorm.DB, clock kernel.Clock) SearchGamesQueryHandler {
	return SearchGamesQueryHandler{
		db:      db,
		pricing: services.NewPromotionPricing(),
		clock:   clock,
	}
}

func (h SearchGamesQueryHandler) Handle(ctx context.Context, query SearchGamesQuery) (Page[GameListItem], error) {
	if err := query.Validate(); err != nil {
		return Page[GameListItem]{}, err
	}

	filters := make([]exp.Expression, 0, 2)
	if query.name != nil {
		filters = append(filters, goqu.C("name").ILike(containsPattern(*query.name)))
	}
	if query.active != nil {
		filters = append(filters, goqu.C("active").Eq(*query.active))
	}
	ds := dialect.From("games").Where(filters...)

	total, err := count(ctx, h.db, ds)
	if err != nil {
		return Page[GameListItem]{}, err
	}

	var rows []gameRow
	err = scan(ctx, h.db, ds.
		Select("id", "name", "description", "publisher", "release_date", "price", "active", "created_at", "modified_at").
		Order(goqu.C("name").Asc(), goqu.C("id").Asc()).
		Offset(query.paging.offset()).
		Limit(query.paging.limit()), &rows)
	if err != nil {
		return Page[GameListItem]{}, err
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	promotions, err := loadPromotions(ctx, h.db, ids, true)
	if err != nil {
		return Page[GameListItem]{}, err
	}

	now := h.clock.Now()
	items := make([]GameListItem, 0, len(rows))
	for _, row := range rows {
		item, err := priceGame(h.pricing, row, promotions[row.ID], now)
		if err != nil {
			return Page[GameListItem]{}, err
		}
		items = append(items, item)
	}

	return newPage(items, query.paging, total), nil
}

// loadPromotions reads the promotions of the given games, grouped by game.
func loadPromotions(
	ctx context.Context,
	db *gorm.DB,
	gameIDs []uuid.UUID,
	activeOnly bool,
) (map[uuid.UUID][]PromotionView, error) {
	grouped := make(map[uuid.UUID][]PromotionView, len(gameIDs))
	if len(gameIDs) == 0 {
		return grouped, nil
	}

	ids := make([]string, 0, len(gameIDs))
	for _, id := range gameIDs {
		ids = append(ids, id.String())
	}
	filters := []exp.Expression{goqu.C("game_id").In(ids)}
	if activeOnly {
		filters = append(filters, goqu.C("active").IsTrue())
	}

	var rows []promotionRow
	err := scan(ctx, db, dialect.From("promotions").
		Select("id", "game_id", "price", "starts_at", "ends_at", "active", "created_at", "modified_at").
		Where(filters...).
		Order(goqu.C("created_at").Asc(), goqu.C("id").Asc()), &rows)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		view, err := row.toView()
		if err != nil {
			return nil, err
		}
		grouped[row.GameID] = append(grouped[row.GameID], view)
	}
	return grouped, nil
}

func priceGame(
	pricing services.PromotionPricing,
	row gameRow,
	views []PromotionView,
	now time.Time,
) (GameListItem, error) {
	id, err := toUUID(row.ID)
	if err != nil {
		return GameListItem{}, err
	}
	base, err := kernel.NewMoney(row.Price)
	if err != nil {
		return GameListItem{}, err
	}

	entities := make([]*promotion.Promotion, 0, len(views))
	for _, view := range views {
		entity, err := view.toDomain()
		if err != nil {
			return GameListItem{}, err
		}
		entities = append(entities, entity)
	}
	effective := pricing.Resolve(base, entities, now)

	return GameListItem{
		ID:             id,
		Name:           row.Name,
		Publisher:      row.Publisher,
		ReleaseDate:    row.ReleaseDate,
		BasePrice:      base,
		EffectivePrice: effective.Price,
		PromotionID:    effective.PromotionID,
		Active:         row.Active,
	}, nil
}
