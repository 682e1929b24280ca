// Package scheduler runs periodic jobs using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/mif-gmao/gmao/internal/shared/biztime"
	"github.com/mif-gmao/gmao/internal/shared/logger"
)

// BatchJob processes one batch and returns the number of items handled.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// SchedulerManager owns the gocron scheduler. Jobs run in singleton mode: a
// run still in progress when the next tick fires makes that tick reschedule.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates a scheduler in the business timezone. A non-nil
// locker makes every job run on at most one instance at a time.
func NewSchedulerManager(log logger.Interface, locker gocron.Locker) (*SchedulerManager, error) {
	opts := []gocron.SchedulerOption{
		gocron.WithLocation(biztime.Location()),
	}
	if locker != nil {
		opts = append(opts, gocron.WithDistributedLocker(locker))
	}

	scheduler, err := gocron.NewScheduler(opts...)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterPlanningGeneration runs job every interval, starting immediately.
// Each run times out after one interval.
func (m *SchedulerManager) RegisterPlanningGeneration(job BatchJob, interval time.Duration) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			defer cancel()
			m.runPlanningGeneration(ctx, job)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("planning", "generation"),
		gocron.WithName("planning-generation"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered planning generation job", "interval", interval)
	return nil
}

func (m *SchedulerManager) runPlanningGeneration(ctx context.Context, job BatchJob) {
	startTime := biztime.NowUTC()

	created, err := job.Execute(ctx)
	if err != nil {
		m.logger.Errorw("planning generation finished with errors",
			"created", created,
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}
	if created > 0 {
		m.logger.Infow("preventive interventions generated",
			"count", created,
			"duration", time.Since(startTime),
		)
	}
}

// Start starts the scheduler and all registered jobs.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop waits for running jobs to complete before returning.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}

func (m *SchedulerManager) Jobs() []gocron.Job {
	return m.scheduler.Jobs()
}
