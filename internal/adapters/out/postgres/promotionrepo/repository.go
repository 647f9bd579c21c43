package promotionrepo

import (
	"context"
	"errors"
	"time"

	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/core/domain/model/promotion"
	"gamestore/internal/pkg/errs"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type changeTracker interface {
	TrackChange(id kernel.UUID, aggregate any, apply func(tx *gorm.DB) (int64, error))
}

// GormPromotionRepository reads promotions directly and queues writes on the
// unit of work that created it.
type GormPromotionRepository struct {
	db      *gorm.DB
	tracker changeTracker
}

func NewGormPromotionRepository(db *gorm.DB, tracker changeTracker) *GormPromotionRepository {
	return &GormPromotionRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormPromotionRepository) Add(_ context.Context, p *promotion.Promotion) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := FromDomain(p)
	r.tracker.TrackChange(p.ID(), p, func(tx *gorm.DB) (int64, error) {
		res := tx.Omit(clause.Associations).Create(&dto)
		return res.RowsAffected, res.Error
	})
	return nil
}

func (r *GormPromotionRepository) Update(_ context.Context, p *promotion.Promotion) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := FromDomain(p)
	r.tracker.TrackChange(p.ID(), p, func(tx *gorm.DB) (int64, error) {
		res := tx.Model(&dto).Select("*").Omit(clause.Associations).Updates(&dto)
		return res.RowsAffected, res.Error
	})
	return nil
}

func (r *GormPromotionRepository) Remove(_ context.Context, p *promotion.Promotion) error {
	if err := p.Validate(); err != nil {
		return err
	}

	id := p.ID().Bytes()
	r.tracker.TrackChange(p.ID(), p, func(tx *gorm.DB) (int64, error) {
		res := tx.Delete(&PromotionDTO{}, "id = ?", id)
		return res.RowsAffected, res.Error
	})
	return nil
}

func (r *GormPromotionRepository) Get(ctx context.Context, id kernel.UUID) (*promotion.Promotion, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PromotionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("promotion", id.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

// HasOverlappingPromotion reports whether an active promotion of the game
// lies entirely within [start, end].
func (r *GormPromotionRepository) HasOverlappingPromotion(
	ctx context.Context,
	gameID kernel.UUID,
	start, end time.Time,
) (bool, error) {
	if err := gameID.Validate(); err != nil {
		return false, err
	}

	query, _, err := goqu.Dialect("postgres").
		From(PromotionDTO{}.TableName()).
		Select(goqu.COUNT("*")).
		Where(
			goqu.C("game_id").Eq(gameID.String()),
			goqu.C("active").IsTrue(),
			goqu.C("starts_at").Gte(start.UTC()),
			goqu.C("ends_at").Lte(end.UTC()),
		).
		ToSQL()
	if err != nil {
		return false, err
	}

	var count int64
	if err = r.db.WithContext(ctx).Raw(query).Scan(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
