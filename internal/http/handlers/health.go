package handlers

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
)

func HealthCheckHandler(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		if err := store.Ping(r.Context()); err != nil {
			log.Error("Health check failed", "error", err)
			http.Error(w, "store unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}
