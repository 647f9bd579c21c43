// Package ownerrepo persists owner aggregates and their library entries.
package ownerrepo

import (
	"time"

	"gamestore/internal/adapters/out/postgres/gamerepo"
	"gamestore/internal/adapters/out/postgres/promotionrepo"
	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/core/domain/model/owner"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OwnerDTO is the owners table row.
type OwnerDTO struct {
	ID         uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Name       string            `gorm:"type:varchar(256);not null"`
	Email      string            `gorm:"type:varchar(100);not null;uniqueIndex"`
	CreatedAt  time.Time         `gorm:"type:timestamptz;not null"`
	ModifiedAt *time.Time        `gorm:"type:timestamptz"`
	Library    []LibraryEntryDTO `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

func (OwnerDTO) TableName() string {
	return "owners"
}

// LibraryEntryDTO is the library_entries row. Game and Promotion exist only
// to declare the foreign keys and are never loaded.
type LibraryEntryDTO struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex:ux_library_entries_owner_game"`
	GameID        uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex:ux_library_entries_owner_game;index"`
	PurchasePrice decimal.Decimal             `gorm:"type:numeric(12,2);not null"`
	PromotionID   *uuid.UUID                  `gorm:"type:uuid;index"`
	CreatedAt     time.Time                   `gorm:"type:timestamptz;not null"`
	Game          *gamerepo.GameDTO           `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
	Promotion     *promotionrepo.PromotionDTO `gorm:"foreignKey:PromotionID;constraint:OnDelete:SET NULL"`
}

func (LibraryEntryDTO) TableName() string {
	return "library_entries"
}

func fromDomain(o *owner.Owner) OwnerDTO {
	ownerID := o.ID().Bytes()
	library := make([]LibraryEntryDTO, 0, len(o.Library()))
	for _, entry := range o.Library() {
		library = append(library, entryFromDomain(ownerID, entry))
	}

	return OwnerDTO{
		ID:         ownerID,
		Name:       o.Name(),
		Email:      o.Email(),
		CreatedAt:  o.CreatedAt().UTC(),
		ModifiedAt: o.ModifiedAt(),
		Library:    library,
	}
}

func entryFromDomain(ownerID uuid.UUID, entry *owner.LibraryEntry) LibraryEntryDTO {
	var promotionID *uuid.UUID
	if entry.PromotionID() != nil {
		raw := entry.PromotionID().Bytes()
		promotionID = &raw
	}

	return LibraryEntryDTO{
		ID:            entry.ID().Bytes(),
		OwnerID:       ownerID,
		GameID:        entry.GameID().Bytes(),
		PurchasePrice: entry.PurchasePrice().Amount(),
		PromotionID:   promotionID,
		CreatedAt:     entry.CreatedAt().UTC(),
	}
}

func toDomain(dto OwnerDTO) (*owner.Owner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	library := make([]*owner.LibraryEntry, 0, len(dto.Library))
	for _, eDto := range dto.Library {
		entry, eErr := entryToDomain(eDto)
		if eErr != nil {
			return nil, eErr
		}
		library = append(library, entry)
	}

	return owner.RestoreOwner(id, dto.Name, dto.Email, dto.CreatedAt.UTC(), dto.ModifiedAt, library)
}

func entryToDomain(dto LibraryEntryDTO) (*owner.LibraryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}
	gameID, err := kernel.UUIDFromBytes(dto.GameID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.PurchasePrice)
	if err != nil {
		return nil, err
	}

	var promotionID *kernel.UUID
	if dto.PromotionID != nil {
		pID, pErr := kernel.UUIDFromBytes((*dto.PromotionID)[:])
		if pErr != nil {
			return nil, pErr
		}
		promotionID = &pID
	}

	return owner.RestoreLibraryEntry(id, ownerID, gameID, price, promotionID, dto.CreatedAt.UTC())
}
