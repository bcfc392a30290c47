package http

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mauv0809/rollforteams/internal/http/handlers"
	"github.com/mauv0809/rollforteams/internal/metrics"
	"github.com/mauv0809/rollforteams/internal/player"
	"github.com/mauv0809/rollforteams/internal/render"
)

//go:embed static
var staticFS embed.FS

func NewServer(store player.Store, metricsSvc metrics.Metrics, metricsHandler http.Handler, renderer render.Renderer) *Server {
	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Renderer:       renderer,
		Router:         mux.NewRouter(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// mux applies these after route matching, so metrics see the route template.
	s.Router.Use(func(next http.Handler) http.Handler {
		return Chain(next, recoveryMiddleware, requestLogMiddleware, metricsMiddleware(s.Metrics))
	})

	page := Handle(handlers.PlayerListHandler(s.Store, s.Renderer))
	s.Router.Handle("/", page)
	s.Router.Handle("/rollforteams", page)

	s.Router.Handle("/api/players", Handle(handlers.ListPlayersHandler(s.Store, s.Metrics))).Methods(http.MethodGet)
	s.Router.Handle("/health", handlers.HealthCheckHandler(s.Store)).Methods(http.MethodGet)
	s.Router.Handle("/metrics", s.MetricsHandler).Methods(http.MethodGet)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The embedded directory is fixed at build time.
		panic(err)
	}
	s.Router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(static))))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
