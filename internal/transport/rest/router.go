package rest

import (
	"net/http"

	"github.com/heartmarshall/wordlookup/internal/transport/middleware"
)

// NewRouter registers all routes. searchLimit wraps the endpoints that start
// a lookup and may be nil.
func NewRouter(session *SessionHandler, health *HealthHandler, searchLimit middleware.Middleware) *http.ServeMux {
	limited := func(h http.HandlerFunc) http.Handler {
		if searchLimit == nil {
			return h
		}
		return searchLimit(h)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("GET /api/state", session.State)
	mux.Handle("POST /api/search", limited(session.Search))
	mux.HandleFunc("GET /api/query", session.GetQuery)
	mux.Handle("PUT /api/query", limited(session.SetQuery))
	mux.HandleFunc("GET /api/history", session.History)
	mux.Handle("POST /api/history/pick", limited(session.PickHistory))
	mux.HandleFunc("DELETE /api/history", session.ClearHistory)
	mux.HandleFunc("GET /api/theme", session.GetTheme)
	mux.HandleFunc("PUT /api/theme", session.SetTheme)
	mux.HandleFunc("POST /api/theme/toggle", session.ToggleTheme)

	return mux
}
