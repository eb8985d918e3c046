package middleware

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wordlookup/internal/config"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain applies mws outermost first: Chain(a, b)(h) is a(b(h)). Nil entries
// are skipped.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] != nil {
				final = mws[i](final)
			}
		}
		return final
	}
}

// Stack is the middleware every wordlookup route runs behind: Recovery,
// RequestID, Logger and then CORS. CORS headers are set before the route
// runs, so a recovered 500 carries them too.
func Stack(logger *slog.Logger, cors config.CORSConfig) Middleware {
	return Chain(
		Recovery(logger),
		RequestID(),
		Logger(logger),
		CORS(cors),
	)
}
