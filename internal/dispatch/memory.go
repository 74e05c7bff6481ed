package dispatch

import (
	"context"
	"sync"
	"time"

	"postsched/internal/common"
	"postsched/internal/monitoring"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// MemoryDispatcher runs jobs in-process: one timer per pending job feeding a
// worker pool over a buffered channel. Cancellation stops the timer;
// cancelling an unknown or already-fired token is a no-op.
type MemoryDispatcher struct {
	executor   common.JobExecutor
	jobs       map[string]*time.Timer
	fireCh     chan common.JobPayload
	workerPool int
	clock      common.Clock
	ctx        context.Context
	cancel     context.CancelFunc
	mu         sync.Mutex
	wg         sync.WaitGroup
	started    bool
}

func NewMemoryDispatcher(workerPoolSize, queueSize int, clock common.Clock) *MemoryDispatcher {
	ctx, cancel := context.WithCancel(context.Background())

	return &MemoryDispatcher{
		jobs:       make(map[string]*time.Timer),
		fireCh:     make(chan common.JobPayload, queueSize),
		workerPool: workerPoolSize,
		clock:      clock,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start binds the executor and launches the worker pool. Must be called
// exactly once before Submit.
func (d *MemoryDispatcher) Start(executor common.JobExecutor) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started {
		return
	}
	d.started = true
	d.executor = executor

	for i := 0; i < d.workerPool; i++ {
		d.wg.Add(1)
		go d.processJobs()
	}
}

func (d *MemoryDispatcher) Submit(ctx context.Context, runAt time.Time, payload common.JobPayload) (string, error) {
	token := uuid.NewString()

	delay := runAt.Sub(d.clock.Now())
	if delay < 0 {
		delay = 0
	}

	d.mu.Lock()
	d.jobs[token] = time.AfterFunc(delay, func() {
		d.fire(token, payload)
	})
	d.mu.Unlock()

	monitoring.DispatcherJobsTotal.WithLabelValues("submitted").Inc()
	monitoring.DispatcherQueueDepth.Inc()
	return token, nil
}

func (d *MemoryDispatcher) Cancel(ctx context.Context, token string) error {
	d.mu.Lock()
	timer, ok := d.jobs[token]
	if ok {
		delete(d.jobs, token)
	}
	d.mu.Unlock()

	if ok {
		timer.Stop()
		monitoring.DispatcherJobsTotal.WithLabelValues("cancelled").Inc()
		monitoring.DispatcherQueueDepth.Dec()
	}
	return nil
}

func (d *MemoryDispatcher) fire(token string, payload common.JobPayload) {
	d.mu.Lock()
	_, live := d.jobs[token]
	if live {
		delete(d.jobs, token)
	}
	d.mu.Unlock()

	// A timer that lost the race against Cancel must not deliver.
	if !live {
		return
	}

	monitoring.DispatcherQueueDepth.Dec()

	select {
	case d.fireCh <- payload:
	case <-d.ctx.Done():
	}
}

func (d *MemoryDispatcher) processJobs() {
	defer d.wg.Done()

	for {
		select {
		case payload := <-d.fireCh:
			monitoring.DispatcherJobsTotal.WithLabelValues("fired").Inc()
			if err := d.executor.Execute(context.Background(), payload); err != nil {
				log.WithFields(log.Fields{
					"owner_id": payload.OwnerID,
					"entry_id": payload.EntryID,
				}).WithError(err).Error("job execution failed")
			}
		case <-d.ctx.Done():
			return
		}
	}
}

func (d *MemoryDispatcher) Shutdown() {
	d.cancel()

	d.mu.Lock()
	for token, timer := range d.jobs {
		timer.Stop()
		delete(d.jobs, token)
	}
	d.mu.Unlock()

	d.wg.Wait()
	log.Info("memory dispatcher shutdown complete")
}
