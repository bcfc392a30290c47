package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	Requests           *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
	PlayersListed      prometheus.Gauge
	StartupTimeSeconds prometheus.Gauge
}
