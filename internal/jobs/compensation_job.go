package jobs

import (
	"context"
	"errors"
	"strings"
	"time"

	"gamestore/internal/core/application/usecases/commands"
	"gamestore/internal/core/domain/model/compensation"
	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/core/ports"
	"gamestore/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

const (
	// DefaultCompensationBatch is how many pending records a run handles.
	DefaultCompensationBatch = 50

	compensationRunTimeout = 30 * time.Second
)

var ErrUnsupportedCompensation = errors.New("compensation kind is not supported by the job")

// CompensationJob retries the cross-store repairs recorded by the account
// coordinator. For a delete_identity_account record it removes the identity
// account unless an owner with that e-mail exists again in the domain store.
type CompensationJob struct {
	schedule      string
	batch         int
	compensations ports.CompensationLog
	uowFactory    commands.OwnerUoWFactory
	identity      ports.IdentityGateway
	clock         kernel.Clock
	cron          *cron.Cron
	log           *logger.Logger
}

// NewCompensationJob builds a job that retries recorded compensations on the
// given cron schedule (with seconds).
//
// Example:
//
//	job := jobs.NewCompensationJob("*/30 * * * * *", compensationLog,
//	    ownerUoWFactory, identityGateway, kernel.SystemClock{}, log)
//	if err := job.Start(); err != nil {
//	    return err
//	}
//	defer job.Stop()
func NewCompensationJob(
	schedule string,
	compensations ports.CompensationLog,
	uowFactory commands.OwnerUoWFactory,
	identity ports.IdentityGateway,
	clock kernel.Clock,
	log *logger.Logger,
) *CompensationJob {
	return &CompensationJob{
		schedule:      schedule,
		batch:         DefaultCompensationBatch,
		compensations: compensations,
		uowFactory:    uowFactory,
		identity:      identity,
		clock:         clock,
		cron:          cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		log:           log.With("component", "compensation_job"),
	}
}

func (j *CompensationJob) Name() string {
	return "compensation job"
}

// Start registers the run on the schedule and starts the scheduler.
func (j *CompensationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), compensationRunTimeout)
		defer cancel()

		if err := j.Run(ctx); err != nil {
			j.log.Error("compensation run failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.log.Info("compensation job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running invocation to finish.
func (j *CompensationJob) Stop() {
	<-j.cron.Stop().Done()
	j.log.Info("compensation job stopped")
}

// Run processes one batch of pending records. Failures of single records are
// saved on the record; only log access errors are returned.
func (j *CompensationJob) Run(ctx context.Context) error {
	pending, err := j.compensations.ListPending(ctx, j.batch)
	if err != nil {
		return err
	}

	for _, c := range pending {
		cause := j.apply(ctx, c)
		now := j.clock.Now()
		if cause != nil {
			c.MarkAttemptFailed(cause, now)
			j.log.Warn("compensation attempt failed",
				"id", c.ID().String(), "subject", c.Subject(), "attempts", c.Attempts(), "error", cause)
		} else {
			c.MarkDone(now)
			j.log.Info("compensation applied", "id", c.ID().String(), "subject", c.Subject())
		}

		if err = j.compensations.Save(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (j *CompensationJob) apply(ctx context.Context, c *compensation.Compensation) error {
	if c.Kind() != compensation.KindDeleteIdentityAccount {
		return ErrUnsupportedCompensation
	}

	uow := j.uowFactory.Create()
	defer uow.Rollback(ctx)

	exists, err := uow.OwnerRepository().ExistsByEmail(ctx, c.Subject())
	if err != nil {
		return err
	}
	if exists {
		// the account belongs to an owner registered since
		return nil
	}

	result := j.identity.DeleteAccount(ctx, c.Subject())
	if result.Succeeded || result.HasError(ports.MsgAccountNotFound) {
		return nil
	}
	return errors.New(strings.Join(result.Errors, "; "))
}
