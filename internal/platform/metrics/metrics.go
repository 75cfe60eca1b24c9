// Package metrics exposes the process counters served at /metrics. These
// observe the backend itself; they are not business analytics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MutationsTotal counts committed entity mutations by collection and
// operation.
var MutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tbm_mutations_total",
		Help: "Committed entity mutations by collection and operation.",
	},
	[]string{"entity", "op"},
)

// MutationFailuresTotal counts mutations rejected or failed before commit.
var MutationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tbm_mutation_failures_total",
		Help: "Mutations rejected by validation or failed at the store.",
	},
	[]string{"entity", "op"},
)

// BackupExportsTotal counts backup exports by format (json, csv).
var BackupExportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tbm_backup_exports_total",
		Help: "Backup exports by format.",
	},
	[]string{"format"},
)

// BackupImportsTotal counts import attempts by outcome
// (ok, parse_error, invalid_format, store_error).
var BackupImportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tbm_backup_imports_total",
		Help: "Backup import attempts by outcome.",
	},
	[]string{"outcome"},
)
