package jobs

import (
	"fmt"

	"gamestore/internal/pkg/logger"
)

// Job is a scheduled task that can be started and stopped.
type Job interface {
	Name() string
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	jobs    []Job
	started []Job
	log     *logger.Logger
}

func NewJobManager(log *logger.Logger, jobs ...Job) *JobManager {
	return &JobManager{
		jobs: jobs,
		log:  log.With("component", "job_manager"),
	}
}

// StartAll starts every job in order. If one fails, the jobs already started
// are stopped and the error is returned.
func (jm *JobManager) StartAll() error {
	for _, job := range jm.jobs {
		if err := job.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start %s: %w", job.Name(), err)
		}
		jm.started = append(jm.started, job)
	}

	jm.log.Info("jobs started", "count", len(jm.started))
	return nil
}

// StopAll stops the started jobs in reverse order and waits for running
// invocations to finish.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil
}
