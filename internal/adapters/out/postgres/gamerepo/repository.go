package gamerepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"gamestore/internal/adapters/out/postgres/promotionrepo"
	"gamestore/internal/core/domain/model/game"
	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type changeTracker interface {
	TrackChange(id kernel.UUID, aggregate any, apply func(tx *gorm.DB) (int64, error))
}

// GormGameRepository implements ports.GameRepository using GORM.
type GormGameRepository struct {
	db      *gorm.DB
	tracker changeTracker
}

func NewGormGameRepository(db *gorm.DB, tracker changeTracker) *GormGameRepository {
	return &GormGameRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add queues the insertion of the game row. Promotions are written through
// the promotion repository.
func (r *GormGameRepository) Add(_ context.Context, aggregate *game.Game) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	r.tracker.TrackChange(aggregate.ID(), aggregate, func(tx *gorm.DB) (int64, error) {
		res := tx.Omit(clause.Associations).Create(&dto)
		return res.RowsAffected, res.Error
	})
	return nil
}

func (r *GormGameRepository) Update(_ context.Context, aggregate *game.Game) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	r.tracker.TrackChange(aggregate.ID(), aggregate, func(tx *gorm.DB) (int64, error) {
		res := tx.Model(&dto).Select("*").Omit(clause.Associations).Updates(&dto)
		return res.RowsAffected, res.Error
	})
	return nil
}

// Remove queues the deletion of the game's promotions and then the game.
func (r *GormGameRepository) Remove(_ context.Context, aggregate *game.Game) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID().Bytes()
	r.tracker.TrackChange(aggregate.ID(), aggregate, func(tx *gorm.DB) (int64, error) {
		promos := tx.Where("game_id = ?", id).Delete(&promotionrepo.PromotionDTO{})
		if promos.Error != nil {
			return 0, promos.Error
		}
		res := tx.Delete(&GameDTO{}, "id = ?", id)
		return promos.RowsAffected + res.RowsAffected, res.Error
	})
	return nil
}

func (r *GormGameRepository) Get(ctx context.Context, id kernel.UUID) (*game.Game, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto GameDTO
	err := r.db.WithContext(ctx).
		Preload("Promotions", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at, id")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("game", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsByName compares names case-insensitively. Absent publisher or release
// date only match absent values.
func (r *GormGameRepository) ExistsByName(
	ctx context.Context,
	name string,
	publisher *string,
	releaseDate *time.Time,
) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&GameDTO{}).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name)))

	if publisher != nil {
		q = q.Where("publisher = ?", strings.TrimSpace(*publisher))
	} else {
		q = q.Where("publisher IS NULL")
	}
	if releaseDate != nil {
		q = q.Where("release_date = ?", releaseDate.Format(time.DateOnly))
	} else {
		q = q.Where("release_date IS NULL")
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
