package queries

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"gorm.io/gorm"
)

// GetOwnerLibraryQueryHandler lists library entries with the game name, the
// captured purchase price and the promotion it was bought under, if that
// promotion still exists. An unknown e-mail yields an empty page.
type GetOwnerLibraryQueryHandler struct {
	db *gorm.DB
}

func NewGetOwnerLibraryQueryHandler(db *gorm.DB) GetOwnerLibraryQueryHandler {
	return GetOwnerLibraryQueryHandler{db: db}
}

func (h GetOwnerLibraryQueryHandler) Handle(
	ctx context.Context,
	query GetOwnerLibraryQuery,
) (Page[LibraryItem], error) {
	if err := query.Validate(); err != nil {
		return Page[LibraryItem]{}, err
	}

	ds := dialect.From(goqu.T("library_entries").As("e")).
		InnerJoin(goqu.T("owners").As("o"), goqu.On(goqu.T("o").Col("id").Eq(goqu.T("e").Col("owner_id")))).
		InnerJoin(goqu.T("games").As("g"), goqu.On(goqu.T("g").Col("id").Eq(goqu.T("e").Col("game_id")))).
		Where(goqu.T("o").Col("email").Eq(query.email))

	total, err := count(ctx, h.db, ds)
	if err != nil {
		return Page[LibraryItem]{}, err
	}

	var rows []libraryRow
	err = scan(ctx, h.db, ds.
		Select(
			goqu.T("e").Col("id"),
			goqu.T("e").Col("game_id"),
			goqu.T("g").Col("name").As("game_name"),
			goqu.T("e").Col("purchase_price"),
			goqu.T("e").Col("promotion_id"),
			goqu.T("e").Col("created_at"),
		).
		Order(goqu.T("e").Col("created_at").Desc(), goqu.T("e").Col("id").Asc()).
		Offset(query.paging.offset()).
		Limit(query.paging.limit()), &rows)
	if err != nil {
		return Page[LibraryItem]{}, err
	}

	items := make([]LibraryItem, 0, len(rows))
	for _, row := range rows {
		item, err := row.toItem()
		if err != nil {
			return Page[LibraryItem]{}, err
		}
		items = append(items, item)
	}

	return newPage(items, query.paging, total), nil
}
