// Package queue moves welcome notifications off the request path. The
// user write has already committed by the time anything lands here, and
// nothing here can fail the parent operation.
package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/studiobill/invoice-system/internal/api/metrics"
	"github.com/studiobill/invoice-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes welcome notifications to a fixed set of workers using
// consistent hashing on the recipient email, preserving per-recipient
// ordering.
type Dispatcher struct {
	workers  []chan ports.WelcomeNotification
	notifier ports.Notifier
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, notifier ports.Notifier, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan ports.WelcomeNotification, numWorkers),
		notifier: notifier,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.WelcomeNotification, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a notification to the worker responsible for its
// recipient. When the worker's buffer is full the notification is dropped
// rather than blocking the caller: the side channel is best-effort.
func (d *Dispatcher) Enqueue(n ports.WelcomeNotification) {
	idx := d.shardIndex(n.Email)
	select {
	case d.workers[idx] <- n:
		metrics.NotificationsEnqueuedTotal.Inc()
		metrics.NotificationsQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.NotificationsFailedTotal.WithLabelValues("queue_full").Inc()
		d.log.Warn().Str("email", n.Email).Msg("welcome notification dropped: queue full")
	}
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.WelcomeNotification) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			if err := d.notifier.SendWelcome(ctx, n); err != nil {
				metrics.NotificationsFailedTotal.WithLabelValues("send_failed").Inc()
				d.log.Error().Err(err).
					Str("email", n.Email).
					Int("worker_id", id).
					Msg("welcome notification failed")
			}
			metrics.NotificationsQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
		}
	}
}
