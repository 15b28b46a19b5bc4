package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "taskbazaar_http_requests_total",
		Help: "HTTP requests served, by method and status class.",
	}, []string{"method", "status"})

	PrimaryActionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "taskbazaar_primary_actions_total",
		Help: "Primary actions selected by the prioritization engine, by type (empty included).",
	}, []string{"type"})

	LedgerMutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "taskbazaar_ledger_mutations_total",
		Help: "Release/refund/initiate/verify requests proxied to the ledger, by operation and outcome.",
	}, []string{"op", "outcome"})
)

// Handler serves the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
