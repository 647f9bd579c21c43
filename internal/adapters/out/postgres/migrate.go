package postgres

import (
	"gamestore/internal/adapters/out/postgres/compensationrepo"
	"gamestore/internal/adapters/out/postgres/gamerepo"
	"gamestore/internal/adapters/out/postgres/ownerrepo"
	"gamestore/internal/adapters/out/postgres/promotionrepo"

	"gorm.io/gorm"
)

// Models lists every table of the domain store.
func Models() []any {
	return []any{
		&gamerepo.GameDTO{},
		&promotionrepo.PromotionDTO{},
		&ownerrepo.OwnerDTO{},
		&ownerrepo.LibraryEntryDTO{},
		&compensationrepo.CompensationDTO{},
	}
}

// Migrate creates missing tables, indexes and foreign keys.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
