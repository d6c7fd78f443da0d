// Package metrics defines and registers all custom Prometheus metrics for
// the invoicing API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "invoicing"

// ── Invoice metrics ───────────────────────────────────────────────────────────

// InvoicesGeneratedTotal counts invoice generations by outcome.
// Label:
//   - status: "ok", "unauthorized", "not_found", or "error"
var InvoicesGeneratedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invoices_generated_total",
		Help:      "Total number of invoice generation requests, by outcome.",
	},
	[]string{"status"},
)

// InvoiceGenerationDuration measures the end-to-end latency of one invoice
// render, the single latency-sensitive operation in the system (row
// insertion is linear in entry count).
var InvoiceGenerationDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "invoice_generation_duration_seconds",
		Help:      "Duration of invoice generation from request to document bytes.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Work entry metrics ────────────────────────────────────────────────────────

// WorkEntriesCreatedTotal counts logged work entries.
var WorkEntriesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "work_entries_created_total",
		Help:      "Total number of work entries logged.",
	},
)

// ── User metrics ──────────────────────────────────────────────────────────────

// UsersRegisteredTotal counts created users.
// Label:
//   - source: "self" (public registration) or "admin" (team creation)
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of users created, by creation source.",
	},
	[]string{"source"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsEnqueuedTotal counts welcome notifications handed to the
// dispatcher.
var NotificationsEnqueuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_enqueued_total",
		Help:      "Total number of welcome notifications enqueued.",
	},
)

// NotificationsFailedTotal counts notifications that were dropped or whose
// delivery failed.
// Label:
//   - reason: "queue_full" or "send_failed"
var NotificationsFailedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_failed_total",
		Help:      "Total number of welcome notifications that were not delivered.",
	},
	[]string{"reason"},
)

// NotificationsQueueDepth tracks the pending notifications per worker.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotificationsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notifications_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
