package queries

import (
	"context"

	"gamestore/internal/pkg/errs"

	"github.com/doug-martin/goqu/v9"
	"gorm.io/gorm"
)

type GetOwnerQueryHandler struct {
	db *gorm.DB
}

func NewGetOwnerQueryHandler(db *gorm.DB) GetOwnerQueryHandler {
	return GetOwnerQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when no owner matches.
func (h GetOwnerQueryHandler) Handle(ctx context.Context, query GetOwnerQuery) (OwnerListItem, error) {
	if err := query.Validate(); err != nil {
		return OwnerListItem{}, err
	}

	ds := dialect.From(goqu.T("owners").As("o"))
	var notFound error
	if query.ownerID != nil {
		ds = ds.Where(goqu.T("o").Col("id").Eq(query.ownerID.String()))
		notFound = errs.NewObjectNotFoundError("owner id", *query.ownerID)
	} else {
		ds = ds.Where(goqu.T("o").Col("email").Eq(query.email))
		notFound = errs.NewObjectNotFoundError("email", query.email)
	}

	var rows []ownerRow
	if err := scan(ctx, h.db, ownerColumns(ds).Limit(1), &rows); err != nil {
		return OwnerListItem{}, err
	}
	if len(rows) == 0 {
		return OwnerListItem{}, notFound
	}

	return rows[0].toItem()
}
