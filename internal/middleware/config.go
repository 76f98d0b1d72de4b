package middleware

import (
	"net/http"

	"github.com/templui/brightlog/internal/config"
	"github.com/templui/brightlog/internal/ctxkeys"
)

// Config adds the sanitized app configuration to the request context.
// API keys and connection strings never reach templates.
func Config(cfg *config.Config) func(http.Handler) http.Handler {
	safe := cfg.Sanitized()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxkeys.WithConfig(r.Context(), safe)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
