package ownerrepo

import (
	"context"
	"errors"

	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/core/domain/model/owner"
	"gamestore/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type changeTracker interface {
	TrackChange(id kernel.UUID, aggregate any, apply func(tx *gorm.DB) (int64, error))
}

// GormOwnerRepository implements ports.OwnerRepository using GORM.
type GormOwnerRepository struct {
	db      *gorm.DB
	tracker changeTracker
}

func NewGormOwnerRepository(db *gorm.DB, tracker changeTracker) *GormOwnerRepository {
	return &GormOwnerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add queues the owner row followed by its library entries.
func (r *GormOwnerRepository) Add(_ context.Context, aggregate *owner.Owner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	r.tracker.TrackChange(aggregate.ID(), aggregate, func(tx *gorm.DB) (int64, error) {
		res := tx.Omit(clause.Associations).Create(&dto)
		if res.Error != nil {
			return 0, res.Error
		}
		affected := res.RowsAffected

		if len(dto.Library) > 0 {
			entries := tx.Omit(clause.Associations).Create(&dto.Library)
			if entries.Error != nil {
				return 0, entries.Error
			}
			affected += entries.RowsAffected
		}
		return affected, nil
	})
	return nil
}

// Update queues the owner row and a sync of its library: entries no longer
// in the aggregate are deleted, the rest are upserted. Only the promotion
// reference of an existing entry can change.
func (r *GormOwnerRepository) Update(_ context.Context, aggregate *owner.Owner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	r.tracker.TrackChange(aggregate.ID(), aggregate, func(tx *gorm.DB) (int64, error) {
		res := tx.Model(&dto).Select("*").Omit(clause.Associations).Updates(&dto)
		if res.Error != nil {
			return 0, res.Error
		}
		affected := res.RowsAffected

		keep := make([]uuid.UUID, 0, len(dto.Library))
		for _, entry := range dto.Library {
			keep = append(keep, entry.ID)
		}

		stale := tx.Where("owner_id = ?", dto.ID)
		if len(keep) > 0 {
			stale = stale.Where("id NOT IN ?", keep)
		}
		deleted := stale.Delete(&LibraryEntryDTO{})
		if deleted.Error != nil {
			return 0, deleted.Error
		}
		affected += deleted.RowsAffected

		if len(dto.Library) > 0 {
			upserted := tx.Omit(clause.Associations).
				Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "id"}},
					DoUpdates: clause.AssignmentColumns([]string{"promotion_id"}),
				}).
				Create(&dto.Library)
			if upserted.Error != nil {
				return 0, upserted.Error
			}
			affected += upserted.RowsAffected
		}
		return affected, nil
	})
	return nil
}

// Remove queues the deletion of the owner's entries and then the owner.
func (r *GormOwnerRepository) Remove(_ context.Context, aggregate *owner.Owner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID().Bytes()
	r.tracker.TrackChange(aggregate.ID(), aggregate, func(tx *gorm.DB) (int64, error) {
		entries := tx.Where("owner_id = ?", id).Delete(&LibraryEntryDTO{})
		if entries.Error != nil {
			return 0, entries.Error
		}
		res := tx.Delete(&OwnerDTO{}, "id = ?", id)
		return entries.RowsAffected + res.RowsAffected, res.Error
	})
	return nil
}

func (r *GormOwnerRepository) Get(ctx context.Context, id kernel.UUID) (*owner.Owner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "owner", id.String(), "id = ?", id.Bytes())
}

func (r *GormOwnerRepository) GetByEmail(ctx context.Context, email string) (*owner.Owner, error) {
	email = owner.NormalizeEmail(email)
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}
	return r.first(ctx, "owner", email, "email = ?", email)
}

func (r *GormOwnerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&OwnerDTO{}).
		Where("email = ?", owner.NormalizeEmail(email)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormOwnerRepository) ListHoldingGame(ctx context.Context, gameID kernel.UUID) ([]*owner.Owner, error) {
	if err := gameID.Validate(); err != nil {
		return nil, err
	}
	return r.listByEntries(ctx, "game_id = ?", gameID.Bytes())
}

func (r *GormOwnerRepository) ListReferencingPromotion(
	ctx context.Context,
	promotionID kernel.UUID,
) ([]*owner.Owner, error) {
	if err := promotionID.Validate(); err != nil {
		return nil, err
	}
	return r.listByEntries(ctx, "promotion_id = ?", promotionID.Bytes())
}

func (r *GormOwnerRepository) first(ctx context.Context, param string, key any, cond string, args ...any) (*owner.Owner, error) {
	var dto OwnerDTO
	err := r.db.WithContext(ctx).
		Preload("Library", orderEntries).
		Where(cond, args...).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, key)
		}
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormOwnerRepository) listByEntries(ctx context.Context, cond string, args ...any) ([]*owner.Owner, error) {
	holders := r.db.Model(&LibraryEntryDTO{}).Select("owner_id").Where(cond, args...)

	var dtos []OwnerDTO
	err := r.db.WithContext(ctx).
		Preload("Library", orderEntries).
		Where("id IN (?)", holders).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	owners := make([]*owner.Owner, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		owners = append(owners, o)
	}
	return owners, nil
}

func orderEntries(db *gorm.DB) *gorm.DB {
	return db.Order("created_at, id")
}
