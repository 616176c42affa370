package background

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"

	"github.com/zeeshankeerio/texstock/internal/jobs"
	"github.com/zeeshankeerio/texstock/internal/reconcile"
)

// JobScheduler runs the periodic background work: draining the
// reconciliation outbox and sweeping for low stock.
type JobScheduler struct {
	scheduler  gocron.Scheduler
	reconciler *reconcile.Reconciler
	alerts     *jobs.InventoryAlertService
	batchSize  int
	sweepEvery time.Duration
	registered map[string]gocron.Job
	mu         sync.RWMutex
	log        zerolog.Logger
}

func NewJobScheduler(
	reconciler *reconcile.Reconciler,
	alerts *jobs.InventoryAlertService,
	batchSize int,
	sweepEvery time.Duration,
	log zerolog.Logger,
) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	if batchSize <= 0 {
		batchSize = 50
	}
	if sweepEvery <= 0 {
		sweepEvery = 30 * time.Minute
	}

	js := &JobScheduler{
		scheduler:  scheduler,
		reconciler: reconciler,
		alerts:     alerts,
		batchSize:  batchSize,
		sweepEvery: sweepEvery,
		registered: make(map[string]gocron.Job),
		log:        log,
	}
	js.registerJobs()
	return js, nil
}

func (js *JobScheduler) Start() {
	js.log.Info().Msg("starting background job scheduler")
	js.scheduler.Start()
}

func (js *JobScheduler) Stop() error {
	js.log.Info().Msg("stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs() {
	// Outbox drain every minute. Singleton mode: a slow batch must not
	// overlap with the next tick.
	retryJob, err := js.scheduler.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(js.drainReconcileTasks),
		gocron.WithName("reconcile-outbox-drain"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		js.log.Error().Err(err).Msg("failed to register reconcile outbox job")
	} else {
		js.addJob("reconcile-outbox", retryJob)
	}

	sweepJob, err := js.scheduler.NewJob(
		gocron.DurationJob(js.sweepEvery),
		gocron.NewTask(js.sweepLowStock),
		gocron.WithName("low-stock-sweep"),
	)
	if err != nil {
		js.log.Error().Err(err).Msg("failed to register low-stock sweep job")
	} else {
		js.addJob("low-stock-sweep", sweepJob)
	}
}

func (js *JobScheduler) addJob(name string, job gocron.Job) {
	js.mu.Lock()
	defer js.mu.Unlock()
	js.registered[name] = job
}

func (js *JobScheduler) drainReconcileTasks() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := js.reconciler.RetryPending(ctx, js.batchSize); err != nil {
		js.log.Error().Err(err).Msg("reconcile outbox drain failed")
	}
}

func (js *JobScheduler) sweepLowStock() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	js.alerts.Sweep(ctx)
}
