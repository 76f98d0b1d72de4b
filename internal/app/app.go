package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/templui/brightlog/internal/config"
	"github.com/templui/brightlog/internal/db"
	"github.com/templui/brightlog/internal/i18n"
	"github.com/templui/brightlog/internal/repository"
	"github.com/templui/brightlog/internal/service"
	"github.com/templui/brightlog/internal/supabase"
	"github.com/tmc/langchaingo/llms"
)

// Pinger is the backend behind the repositories, for health checks.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Stores holds the repositories for the configured DB_DRIVER.
type Stores struct {
	DB       *sqlx.DB // nil with the supabase driver
	Pinger   Pinger
	Profiles repository.ProfileRepository
	Goals    repository.GoalsRepository
	Logs     repository.LogRepository
}

// OpenStores connects to the store selected by cfg.DBDriver. SQL stores
// are migrated on open.
func OpenStores(cfg *config.Config) (*Stores, error) {
	if !cfg.UsesSQL() {
		client, err := supabase.New(supabase.Config{
			URL:     cfg.SupabaseURL,
			APIKey:  cfg.SupabaseKey,
			Timeout: cfg.HTTPTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize supabase client: %w", err)
		}

		return &Stores{
			Pinger:   client,
			Profiles: repository.NewSupabaseProfileRepository(client),
			Goals:    repository.NewSupabaseGoalsRepository(client),
			Logs:     repository.NewSupabaseLogRepository(client),
		}, nil
	}

	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Stores{
		DB:       database,
		Pinger:   database,
		Profiles: repository.NewProfileRepository(database),
		Goals:    repository.NewGoalsRepository(database),
		Logs:     repository.NewLogRepository(database),
	}, nil
}

func (s *Stores) Close() error {
	return db.Close(s.DB)
}

type App struct {
	Cfg             *config.Config
	Stores          *Stores
	Localizer       *i18n.Localizer
	IdentityService *service.IdentityService
	GoalsService    *service.GoalsService
	JournalService  *service.JournalService
	ReplyService    *service.ReplyService
}

func New(cfg *config.Config) (*App, error) {
	llm, err := service.NewOpenAICompatibleLLM(cfg.LLMAPIKey, cfg.LLMBaseURL)
	if err != nil {
		return nil, err
	}
	return NewWithLLM(cfg, llm)
}

// NewWithLLM wires the app around the given model.
func NewWithLLM(cfg *config.Config, llm llms.Model) (*App, error) {
	stores, err := OpenStores(cfg)
	if err != nil {
		return nil, err
	}

	// Services
	identityService := service.NewIdentityService(stores.Profiles)
	goalsService := service.NewGoalsService(stores.Goals)
	replyService := service.NewReplyService(llm)
	journalService := service.NewJournalService(stores.Logs, goalsService, replyService, time.Local)

	return &App{
		Cfg:             cfg,
		Stores:          stores,
		Localizer:       i18n.New(cfg.DefaultLocale),
		IdentityService: identityService,
		GoalsService:    goalsService,
		JournalService:  journalService,
		ReplyService:    replyService,
	}, nil
}

func (a *App) Close() error {
	if a.Stores != nil {
		return a.Stores.Close()
	}
	return nil
}
