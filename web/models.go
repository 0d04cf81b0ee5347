package web

import (
	"swiss-tournament/api/api"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

// Config holds the configuration for the web server
type Config struct {
	Addr string
	API  *api.API
	// RequestsPerSecond and Burst configure the limiter shared by all endpoints. Zero means the defaults
	RequestsPerSecond float64
	Burst             int
}

// Server is the HTTP server that exposes standings and pairings as JSON
type Server struct {
	api     *api.API
	limiter *rate.Limiter
	metrics *metrics
}

// errorResponse is the body returned with any non 2xx status
type errorResponse struct {
	Error string `json:"error"`
}

// opponentsResponse is the body returned by the opponents endpoint
type opponentsResponse struct {
	ID        int64    `json:"id"`
	Opponents []int64  `json:"opponents"`
	Names     []string `json:"names"`
}

type metrics struct {
	registry        *prometheus.Registry
	pairingRequests *prometheus.CounterVec
	unmatched       *prometheus.GaugeVec
}
