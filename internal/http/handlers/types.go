package handlers

import (
	"context"
	"net/http"
)

// HandlerFunc is an HTTP handler that reports failure instead of writing it.
// The server adapter decides how an error becomes a response.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PlayersTemplate is the page rendered with the full player collection.
const PlayersTemplate = "rollforteams.html"
