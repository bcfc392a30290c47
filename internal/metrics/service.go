package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rollforteams_http_requests_total",
			Help: "The total number of HTTP requests served, by route and status code.",
		}, []string{"route", "code"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rollforteams_http_request_duration_seconds",
			Help:    "The duration of HTTP requests by route.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"route"}),
		PlayersListed: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rollforteams_players_listed",
			Help: "The number of players returned by the most recent listing.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rollforteams_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.Requests,
		s.RequestDuration,
		s.PlayersListed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncRequests(route string, code int) {
	s.Requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

func (s *Service) ObserveRequestDuration(route string, duration float64) {
	s.RequestDuration.WithLabelValues(route).Observe(duration)
}

func (s *Service) SetPlayersListed(count int) {
	s.PlayersListed.Set(float64(count))
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
