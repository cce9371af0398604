// Package metrics defines the custom Prometheus metrics for the business-ops
// API. It is the single source of truth for metric names, labels, and help
// strings; registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "businessops"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "denied", "throttled" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Login rule metrics ────────────────────────────────────────────────────────

// RuleMutationsTotal counts administrative changes to login rules.
// Label:
//   - action: "created", "updated" or "deleted"
var RuleMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_rule_mutations_total",
		Help:      "Total number of login rule mutations, by action.",
	},
	[]string{"action"},
)

// ── Quote metrics ─────────────────────────────────────────────────────────────

// QuotesCreatedTotal counts persisted quotes.
var QuotesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quotes_created_total",
		Help:      "Total number of quotes created.",
	},
)

// QuoteTotalAmount observes the final total of each created quote, giving a
// rough value distribution without storing per-quote data in Prometheus.
var QuoteTotalAmount = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "quote_total_amount",
		Help:      "Distribution of quote totals at creation time.",
		Buckets:   prometheus.ExponentialBuckets(10, 4, 8), // 10 … 163,840
	},
)

// ── Business metrics ──────────────────────────────────────────────────────────

// BusinessesCreatedTotal counts created businesses, by type.
var BusinessesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "businesses_created_total",
		Help:      "Total number of businesses created, by type.",
	},
	[]string{"type"},
)
