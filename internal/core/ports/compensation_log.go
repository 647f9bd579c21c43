package ports

import (
	"context"

	"gamestore/internal/core/domain/model/compensation"
)

// CompensationLog durably stores divergences between the identity store and
// the domain store. It writes immediately, outside any UnitOfWork.
type CompensationLog interface {
	Record(ctx context.Context, c *compensation.Compensation) error

	// ListPending returns up to limit pending records, oldest first.
	ListPending(ctx context.Context, limit int) ([]*compensation.Compensation, error)

	Save(ctx context.Context, c *compensation.Compensation) error
}
