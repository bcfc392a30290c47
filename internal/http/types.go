package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mauv0809/rollforteams/internal/metrics"
	"github.com/mauv0809/rollforteams/internal/player"
	"github.com/mauv0809/rollforteams/internal/render"
)

type Server struct {
	Store          player.Store
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Renderer       render.Renderer
	Router         *mux.Router
}
