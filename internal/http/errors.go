package http

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/rollforteams/internal/http/handlers"
)

// Handle adapts an error-returning handler. Any returned error is logged
// and answered with a 500; the handler itself never writes on failure.
func Handle(h handlers.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			log.Error("Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	})
}
