package queries

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"gorm.io/gorm"
)

// SearchPromotionsQueryHandler pages through promotions with the name of
// their game, latest start first.
type SearchPromotionsQueryHandler struct {
	db *gorm.DB
}

func NewSearchPromotionsQueryHandler(db *gorm.DB) SearchPromotionsQueryHandler {
	return SearchPromotionsQueryHandler{db: db}
}

func (h SearchPromotionsQueryHandler) Handle(
	ctx context.Context,
	query SearchPromotionsQuery,
) (Page[PromotionListItem], error) {
	if err := query.Validate(); err != nil {
		return Page[PromotionListItem]{}, err
	}

	filters := make([]exp.Expression, 0, 4)
	if f := query.filter; f.GameID != nil {
		filters = append(filters, goqu.T("p").Col("game_id").Eq(f.GameID.String()))
	}
	if f := query.filter; f.MinPrice != nil {
		filters = append(filters, goqu.T("p").Col("price").Gte(f.MinPrice.String()))
	}
	if f := query.filter; f.MaxPrice != nil {
		filters = append(filters, goqu.T("p").Col("price").Lte(f.MaxPrice.String()))
	}
	if f := query.filter; f.Active != nil {
		filters = append(filters, goqu.T("p").Col("active").Eq(*f.Active))
	}

	ds := dialect.From(goqu.T("promotions").As("p")).
		InnerJoin(goqu.T("games").As("g"), goqu.On(goqu.T("g").Col("id").Eq(goqu.T("p").Col("game_id")))).
		Where(filters...)

	total, err := count(ctx, h.db, ds)
	if err != nil {
		return Page[PromotionListItem]{}, err
	}

	var rows []promotionRow
	err = scan(ctx, h.db, ds.
		Select(
			goqu.T("p").Col("id"),
			goqu.T("p").Col("game_id"),
			goqu.T("g").Col("name").As("game_name"),
			goqu.T("p").Col("price"),
			goqu.T("p").Col("starts_at"),
			goqu.T("p").Col("ends_at"),
			goqu.T("p").Col("active"),
			goqu.T("p").Col("created_at"),
			goqu.T("p").Col("modified_at"),
		).
		Order(goqu.T("p").Col("starts_at").Desc(), goqu.T("p").Col("id").Asc()).
		Offset(query.paging.offset()).
		Limit(query.paging.limit()), &rows)
	if err != nil {
		return Page[PromotionListItem]{}, err
	}

	items := make([]PromotionListItem, 0, len(rows))
	for _, row := range rows {
		view, err := row.toView()
		if err != nil {
			return Page[PromotionListItem]{}, err
		}
		items = append(items, PromotionListItem{PromotionView: view, GameName: row.GameName})
	}

	return newPage(items, query.paging, total), nil
}
