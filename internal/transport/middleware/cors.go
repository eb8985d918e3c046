package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/wordlookup/internal/config"
)

// exposedHeaders are the response headers a browser UI of the session may
// read: the request id for bug reports and Retry-After from the search
// rate limit.
var exposedHeaders = strings.Join([]string{RequestIDHeader, "Retry-After"}, ", ")

// CORS returns middleware that lets a browser UI on another origin drive the
// session API. Preflight requests are answered directly; every other request
// reaches next.
//
// A "*" entry in AllowedOrigins answers with a literal "*" unless
// credentials are allowed, in which case the request origin is echoed.
func CORS(cfg config.CORSConfig) Middleware {
	origins := splitList(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			allowed := origin != "" && allowOrigin(h, origin, origins, cfg.AllowCredentials)

			preflight := r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""
			if !preflight {
				if allowed {
					h.Set("Access-Control-Expose-Headers", exposedHeaders)
				}
				next.ServeHTTP(w, r)
				return
			}

			if allowed {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
			}
			w.WriteHeader(http.StatusNoContent)
		})
	}
}

func allowOrigin(h http.Header, origin string, allowed []string, credentials bool) bool {
	for _, a := range allowed {
		switch {
		case a == "*" && !credentials:
			h.Set("Access-Control-Allow-Origin", "*")
		case a == "*" || a == origin:
			h.Set("Access-Control-Allow-Origin", origin)
			if credentials {
				h.Set("Access-Control-Allow-Credentials", "true")
			}
		default:
			continue
		}
		return true
	}
	return false
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
