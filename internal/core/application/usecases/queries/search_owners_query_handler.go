package queries

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"gorm.io/gorm"
)

type SearchOwnersQueryHandler struct {
	db *gorm.DB
}

func NewSearchOwnersQueryHandler(db *gorm.DB) SearchOwnersQueryHandler {
	return SearchOwnersQueryHandler{db: db}
}

// Handle orders owners by name and counts the games each one holds.
func (h SearchOwnersQueryHandler) Handle(ctx context.Context, query SearchOwnersQuery) (Page[OwnerListItem], error) {
	if err := query.Validate(); err != nil {
		return Page[OwnerListItem]{}, err
	}

	ds := dialect.From(goqu.T("owners").As("o"))
	if query.filter != nil {
		pattern := containsPattern(*query.filter)
		ds = ds.Where(goqu.Or(
			goqu.T("o").Col("name").ILike(pattern),
			goqu.T("o").Col("email").ILike(pattern),
		))
	}

	total, err := count(ctx, h.db, ds)
	if err != nil {
		return Page[OwnerListItem]{}, err
	}

	var rows []ownerRow
	err = scan(ctx, h.db, ownerColumns(ds).
		Order(goqu.T("o").Col("name").Asc(), goqu.T("o").Col("id").Asc()).
		Offset(query.paging.offset()).
		Limit(query.paging.limit()), &rows)
	if err != nil {
		return Page[OwnerListItem]{}, err
	}

	items := make([]OwnerListItem, 0, len(rows))
	for _, row := range rows {
		item, err := row.toItem()
		if err != nil {
			return Page[OwnerListItem]{}, err
		}
		items = append(items, item)
	}

	return newPage(items, query.paging, total), nil
}

// ownerColumns selects the owner read model from a dataset aliased "o".
func ownerColumns(ds *goqu.SelectDataset) *goqu.SelectDataset {
	gamesOwned := dialect.From("library_entries").
		Select(goqu.COUNT("*")).
		Where(goqu.C("owner_id").Eq(goqu.T("o").Col("id")))

	return ds.Select(
		goqu.T("o").Col("id"),
		goqu.T("o").Col("name"),
		goqu.T("o").Col("email"),
		gamesOwned.As("games_owned"),
		goqu.T("o").Col("created_at"),
		goqu.T("o").Col("modified_at"),
	)
}
