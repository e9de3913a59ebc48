package webhook

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/stenobot-io/stenobot/ent"
	"github.com/stenobot-io/stenobot/pkg/config"
)

// Dispatcher manages the pool of delivery workers and the shared wake
// channel. It implements services.DispatchNotifier so enqueues cut the poll
// latency.
type Dispatcher struct {
	client  *ent.Client
	config  *config.DispatchConfig
	workers []*Worker
	wakeCh  chan struct{}
	started bool
	mu      sync.Mutex
	logger  *slog.Logger
}

// NewDispatcher creates a delivery dispatcher.
func NewDispatcher(client *ent.Client, cfg *config.DispatchConfig, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		client: client,
		config: cfg,
		wakeCh: make(chan struct{}, 1),
		logger: logger.With("component", "webhook_dispatcher"),
	}
}

// Start spawns the delivery workers. Safe to call multiple times; subsequent
// calls are no-ops.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started {
		d.logger.Warn("dispatcher already started, ignoring duplicate Start call")
		return
	}
	d.started = true

	d.logger.Info("starting webhook dispatcher", "worker_count", d.config.WorkerCount)
	for i := 0; i < d.config.WorkerCount; i++ {
		worker := NewWorker(fmt.Sprintf("delivery-%d", i), d.client, d.config, d.wakeCh, d.logger)
		d.workers = append(d.workers, worker)
		worker.Start(ctx)
	}
}

// Stop signals all workers and waits for in-flight deliveries to finish.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	workers := d.workers
	d.mu.Unlock()

	for _, w := range workers {
		w.Stop()
	}
	d.logger.Info("webhook dispatcher stopped")
}

// NotifyPending wakes one sleeping worker. Non-blocking; a full buffer means
// a wake-up is already queued.
func (d *Dispatcher) NotifyPending(_ context.Context) {
	select {
	case d.wakeCh <- struct{}{}:
	default:
	}
}
