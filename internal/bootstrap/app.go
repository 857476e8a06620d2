package bootstrap

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"docchat-backend/internal/chat"
	"docchat-backend/internal/documents"
	"docchat-backend/internal/llm"
	"docchat-backend/internal/llm/gemini"
	"docchat-backend/internal/services/health"
	"docchat-backend/internal/shared/config"
	"docchat-backend/internal/shared/server"
	"docchat-backend/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	DocumentsRepo    documents.Repo
	TurnsRepo        chat.Repo
	LLM              llm.Client
	DocumentsService *documents.Service
	ChatService      *chat.Service
	DocumentsHandler *documents.Handler
	ChatHandler      *chat.Handler
	HealthService    *health.Service
}

// Build prepares shared dependencies and wires the router. An optional LLM
// client overrides the configured provider (used by tests).
func Build(cfg config.Config, overrides ...llm.Client) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var llmClient llm.Client
	if len(overrides) > 0 && overrides[0] != nil {
		llmClient = overrides[0]
	} else {
		llmClient, err = buildLLM(cfg)
		if err != nil {
			return nil, err
		}
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		LLM:    llmClient,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		DocumentsHandler: app.DocumentsHandler,
		ChatHandler:      app.ChatHandler,
		HealthService:    app.HealthService,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, errDatabaseRequired
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return sqlDB, nil
}

func buildLLM(cfg config.Config) (llm.Client, error) {
	if cfg.LLMProvider == "none" || strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		if isDevLike(cfg.Env) || cfg.LLMProvider == "none" {
			log.Printf("bootstrap: no LLM credentials; chat requests will fail until configured")
			return llm.PlaceholderClient{}, nil
		}
		return nil, errLLMRequired
	}
	return gemini.NewClient(cfg.GeminiAPIKey, cfg.LLMModel)
}

func buildServices(app *App) {
	var docRepo documents.Repo
	var turnsRepo chat.Repo

	if app.DB != nil {
		docRepo = &documents.PGRepo{DB: app.DB}
		turnsRepo = &chat.PGRepo{DB: app.DB}
	} else {
		docRepo = documents.NewMemoryRepo()
		turnsRepo = chat.NewMemoryRepo()
	}

	app.DocumentsRepo = docRepo
	app.TurnsRepo = turnsRepo
	app.DocumentsService = &documents.Service{Repo: docRepo, Turns: turnsRepo}
	app.ChatService = &chat.Service{Docs: docRepo, Turns: turnsRepo, LLM: app.LLM}
	app.DocumentsHandler = documents.NewHandler(app.DocumentsService, app.Config.MaxUploadMB<<20)
	app.ChatHandler = chat.NewHandler(app.ChatService)
	app.HealthService = health.NewService()
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
