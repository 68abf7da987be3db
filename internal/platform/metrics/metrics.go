// Package metrics registers the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FxRateLookups counts rate lookups by how they were served.
	FxRateLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fx_rate_lookups_total",
		Help: "Rate lookups partitioned by serving source (cache, live, fallback).",
	}, []string{"source"})

	// ExpensesCreated counts successfully created expenses.
	ExpensesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "expenses_created_total",
		Help: "Expenses created since process start.",
	})

	// SettlementsCreated counts successfully created settlements.
	SettlementsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "settlements_created_total",
		Help: "Settlements created since process start.",
	})
)
