package compensationrepo

import (
	"context"

	"gamestore/internal/core/domain/model/compensation"

	"gorm.io/gorm"
)

// GormCompensationLog implements ports.CompensationLog.
type GormCompensationLog struct {
	db *gorm.DB
}

func NewGormCompensationLog(db *gorm.DB) *GormCompensationLog {
	return &GormCompensationLog{db: db}
}

func (l *GormCompensationLog) Record(ctx context.Context, c *compensation.Compensation) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(c)
	if err != nil {
		return err
	}
	return l.db.WithContext(ctx).Create(&dto).Error
}

func (l *GormCompensationLog) ListPending(ctx context.Context, limit int) ([]*compensation.Compensation, error) {
	var dtos []CompensationDTO
	err := l.db.WithContext(ctx).
		Where("status = ?", string(compensation.StatusPending)).
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]*compensation.Compensation, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, c)
	}
	return records, nil
}

func (l *GormCompensationLog) Save(ctx context.Context, c *compensation.Compensation) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(c)
	if err != nil {
		return err
	}
	return l.db.WithContext(ctx).Save(&dto).Error
}
