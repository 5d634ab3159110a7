// Package metrics holds the portal's prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_http_requests_total",
			Help: "Total requests by route, method and status.",
		},
		[]string{"route", "method", "status"},
	)

	PolicyDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_policy_decisions_total",
			Help: "Access decisions by action and outcome.",
		},
		[]string{"action", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(RequestCounter, PolicyDecisions)
}

// RecordDecision counts one access decision for action.
func RecordDecision(action string, allowed bool) {
	outcome := "denied"
	if allowed {
		outcome = "allowed"
	}
	PolicyDecisions.WithLabelValues(action, outcome).Inc()
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
