// Package metrics defines and registers the custom Prometheus metrics for the
// società API. It is the single source of truth for metric names, labels, and
// help strings; promauto registers everything with the default registry at
// package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "societa"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// CompanyViewsTotal counts rendered company reads.
// Label:
//   - visibility: "full" or "censored"
var CompanyViewsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "company_views_total",
		Help:      "Total number of company records rendered, by visibility.",
	},
	[]string{"visibility"},
)

// CompanyMutationsTotal counts admin mutations on società records.
// Label:
//   - op: "create", "update" or "delete"
var CompanyMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "company_mutations_total",
		Help:      "Total number of company mutations, by operation.",
	},
	[]string{"op"},
)

// PublicListCacheTotal counts public-list cache lookups.
// Label:
//   - result: "hit" or "miss"
var PublicListCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "public_list_cache_total",
		Help:      "Total number of public listing cache lookups, by result.",
	},
	[]string{"result"},
)
