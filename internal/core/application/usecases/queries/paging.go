// Package queries contains the read side: paged searches and detail views
// served straight from the domain store with goqu-built SQL. Queries never
// go through a unit of work.
package queries

import (
	"context"
	"errors"
	"strings"

	"gamestore/internal/pkg/errs"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	// MaxPage keeps (page-1)*size far below the int range on 32-bit targets.
	MaxPage = 1_000_000
)

var dialect = goqu.Dialect("postgres")

// Paging selects one page of a result set. Pages are numbered from 1.
type Paging struct {
	page int
	size int
}

// NewPaging validates 1 ≤ page ≤ MaxPage and 1 ≤ size ≤ MaxPageSize.
//
// Example:
//
//	paging, err := queries.NewPaging(2, 20) // rows 21..40
func NewPaging(page, size int) (Paging, error) {
	var errList []error
	if page < 1 || page > MaxPage {
		errList = append(errList, errs.NewValueIsOutOfRangeError("page", page, 1, MaxPage))
	}
	if size < 1 || size > MaxPageSize {
		errList = append(errList, errs.NewValueIsOutOfRangeError("page size", size, 1, MaxPageSize))
	}
	if err := errs.Validation(errList...); err != nil {
		return Paging{}, err
	}
	return Paging{page: page, size: size}, nil
}

func (p Paging) Page() int {
	return p.page
}

func (p Paging) Size() int {
	return p.size
}

func (p Paging) offset() uint {
	return uint(p.page-1) * uint(p.size) //nolint:gosec // NewPaging bounds page and size
}

func (p Paging) limit() uint {
	return uint(p.size) //nolint:gosec // size is validated positive
}

func (p Paging) validate() error {
	if p.page < 1 || p.page > MaxPage || p.size < 1 || p.size > MaxPageSize {
		return errors.New("paging must be created via NewPaging")
	}
	return nil
}

// Page is one page of items with the size of the whole result set.
type Page[T any] struct {
	Items      []T
	Page       int
	Size       int
	TotalCount int64
	TotalPages int
}

func newPage[T any](items []T, paging Paging, total int64) Page[T] {
	if items == nil {
		items = make([]T, 0)
	}
	size := int64(paging.size)
	return Page[T]{
		Items:      items,
		Page:       paging.page,
		Size:       paging.size,
		TotalCount: total,
		TotalPages: int((total + size - 1) / size),
	}
}

// count runs SELECT COUNT(*) over the filtered dataset.
func count(ctx context.Context, db *gorm.DB, ds *goqu.SelectDataset) (int64, error) {
	query, _, err := ds.Select(goqu.COUNT("*")).ToSQL()
	if err != nil {
		return 0, err
	}

	var total int64
	if err = db.WithContext(ctx).Raw(query).Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// scan runs a built dataset and maps the columns onto dest by name.
func scan(ctx context.Context, db *gorm.DB, ds *goqu.SelectDataset, dest any) error {
	query, _, err := ds.ToSQL()
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Raw(query).Scan(dest).Error
}

// containsPattern builds an ILIKE pattern matching s anywhere, with the
// LIKE wildcards in s escaped.
func containsPattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.TrimSpace(s)) + "%"
}
