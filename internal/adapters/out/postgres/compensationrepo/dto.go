// Package compensationrepo is the durable log of cross-store divergences.
// Unlike the aggregate repositories it writes immediately: a record must
// survive the failure of the unit of work it reports on.
package compensationrepo

import (
	"time"

	"gamestore/internal/core/domain/model/compensation"
	"gamestore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"gorm.io/datatypes"
)

type CompensationDTO struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Kind      string         `gorm:"type:varchar(64);not null"`
	Subject   string         `gorm:"type:varchar(100);not null;index"`
	Payload   datatypes.JSON `gorm:"type:jsonb;not null"`
	Status    string         `gorm:"type:varchar(16);not null;index"`
	Attempts  int            `gorm:"not null"`
	LastError string         `gorm:"type:text;not null"`
	CreatedAt time.Time      `gorm:"type:timestamptz;not null;index"`
	UpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime:false"`
}

func (CompensationDTO) TableName() string {
	return "compensations"
}

func fromDomain(c *compensation.Compensation) (CompensationDTO, error) {
	payload, err := jsoniter.ConfigFastest.Marshal(c.Payload())
	if err != nil {
		return CompensationDTO{}, err
	}

	return CompensationDTO{
		ID:        c.ID().Bytes(),
		Kind:      string(c.Kind()),
		Subject:   c.Subject(),
		Payload:   datatypes.JSON(payload),
		Status:    string(c.Status()),
		Attempts:  c.Attempts(),
		LastError: c.LastError(),
		CreatedAt: c.CreatedAt().UTC(),
		UpdatedAt: c.UpdatedAt().UTC(),
	}, nil
}

func toDomain(dto CompensationDTO) (*compensation.Compensation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	payload := map[string]any{}
	if len(dto.Payload) > 0 {
		if err = jsoniter.ConfigFastest.Unmarshal(dto.Payload, &payload); err != nil {
			return nil, err
		}
	}

	return compensation.RestoreCompensation(
		id,
		compensation.Kind(dto.Kind),
		dto.Subject,
		payload,
		compensation.Status(dto.Status),
		dto.Attempts,
		dto.LastError,
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
	)
}
