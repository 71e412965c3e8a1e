// Package metrics defines and registers all custom Prometheus metrics for the
// reading tracker API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics use promauto, so importing the package registers them with the
// default Prometheus registry before the HTTP server starts.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "readingtracker"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts via the identity provider.
// Label:
//   - result: "success", "invalid_token", or "inactive_account"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of provider login attempts, by result.",
	},
	[]string{"result"},
)

// SessionsRevokedTotal counts explicit logouts.
var SessionsRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_revoked_total",
		Help:      "Total number of sessions revoked through logout.",
	},
)

// ── Reading entry metrics ─────────────────────────────────────────────────────

// EntriesCreatedTotal counts reading entries added to libraries.
var EntriesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entries_created_total",
		Help:      "Total number of reading entries added to user libraries.",
	},
)

// EntryTransitionsTotal counts successful lifecycle operations on entries.
// Labels:
//   - operation: "start", "progress", "complete", "abandon", "review"
//   - status: the entry status after the operation (e.g. "in_progress")
var EntryTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entry_transitions_total",
		Help:      "Total number of successful reading entry lifecycle operations.",
	},
	[]string{"operation", "status"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// BooksCreatedTotal counts books added to the shared catalog.
var BooksCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "books_created_total",
		Help:      "Total number of books added to the catalog.",
	},
)
