package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mauv0809/rollforteams/internal/metrics"
	"github.com/mauv0809/rollforteams/internal/player"
	"github.com/mauv0809/rollforteams/internal/render"
)

// PlayerListHandler renders the roll for teams page with every player,
// bound to the template as "players", in store order.
func PlayerListHandler(repo player.Repository, renderer render.Renderer) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		players, err := repo.ListAll(r.Context())
		if err != nil {
			return err
		}
		return renderer.Render(w, http.StatusOK, PlayersTemplate, map[string]any{"players": players})
	}
}

// ListPlayersHandler returns the players as a JSON array.
func ListPlayersHandler(repo player.Repository, metricsSvc metrics.Metrics) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		players, err := repo.ListAll(r.Context())
		if err != nil {
			return err
		}
		if players == nil {
			players = []player.Player{}
		}
		metricsSvc.SetPlayersListed(len(players))

		body, err := json.Marshal(players)
		if err != nil {
			return err
		}
		w.Header().Set("Content-Type", "application/json")
		_, err = w.Write(body)
		return err
	}
}
