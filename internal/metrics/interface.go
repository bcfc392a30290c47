package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncRequests(route string, code int)
	ObserveRequestDuration(route string, duration float64)
	SetPlayersListed(count int)
	SetStartupTime(duration float64)
}
