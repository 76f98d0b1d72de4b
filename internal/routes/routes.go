package routes

import (
	"io/fs"
	"net/http"

	"github.com/templui/brightlog/assets"
	"github.com/templui/brightlog/internal/app"
	"github.com/templui/brightlog/internal/handler"
	"github.com/templui/brightlog/internal/markdown"
	"github.com/templui/brightlog/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	home := handler.NewHomeHandler()
	session := handler.NewSessionHandler(app.IdentityService)
	journal := handler.NewJournalHandler(app.IdentityService, app.GoalsService, app.JournalService, markdown.NewParser())
	health := handler.NewHealthHandler(app.Stores.Pinger)

	mux := http.NewServeMux()

	// Static files
	sub, _ := fs.Sub(assets.AssetsFS, ".")
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServer(http.FS(sub))))

	mux.HandleFunc("GET /healthz", health.Health)

	// Nickname gate (rate limited)
	rateLimiter := middleware.RateLimitSession()
	mux.HandleFunc("GET /{$}", home.HomePage)
	mux.HandleFunc("POST /session", rateLimiter(session.Start))

	// Journal, addressed by the user identifier
	mux.HandleFunc("GET /journal/{user_uuid}", journal.JournalPage)
	mux.HandleFunc("POST /journal/{user_uuid}/goals", journal.SaveGoals)
	mux.HandleFunc("POST /journal/{user_uuid}/entries", journal.SubmitEntry)

	// 404
	mux.HandleFunc("/{path...}", home.NotFoundPage)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Config(app.Cfg), // Config must be first (read by CSRFProtection for the cookie flags)
		middleware.RequestLogging,
		middleware.Locale(app.Localizer),
		middleware.CSRFProtection,
		middleware.WithURLPath,
	)

	return handler
}
