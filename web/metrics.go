/* metrics.go
 * Contains the prometheus metrics exported on /metrics
 * Author: Zachary Bower
 */

package web

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		pairingRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "swiss",
			Name:      "pairing_requests_total",
			Help:      "Pairing requests by mode and outcome.",
		}, []string{"mode", "outcome"}),
		unmatched: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "swiss",
			Name:      "unmatched_players",
			Help:      "Players left without an opponent by the last pairing request.",
		}, []string{"mode"}),
	}
	m.registry.MustRegister(m.pairingRequests, m.unmatched)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// observePairing records the outcome of a pairing request
func (m *metrics) observePairing(mode string, unmatched int, err error) {
	if err != nil {
		m.pairingRequests.WithLabelValues(mode, "error").Inc()
		return
	}
	outcome := "complete"
	if unmatched > 0 {
		outcome = "incomplete"
	}
	m.pairingRequests.WithLabelValues(mode, outcome).Inc()
	m.unmatched.WithLabelValues(mode).Set(float64(unmatched))
}
