// Package bootstrap wires configuration, storage, queue, and handlers into
// a runnable application.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"deckflow-backend/internal/cache"
	"deckflow-backend/internal/decks"
	"deckflow-backend/internal/queue"
	"deckflow-backend/internal/shared/config"
	"deckflow-backend/internal/shared/server"
	"deckflow-backend/internal/shared/storage/db"
	"deckflow-backend/internal/workerproc"
)

// App holds shared dependencies.
type App struct {
	Config       config.Config
	Router       *gin.Engine
	DB           *sql.DB
	Repo         decks.Repo
	Producer     queue.Producer
	Consumer     queue.Consumer
	Cache        cache.Store
	DecksService *decks.Service
	DecksHandler *decks.Handler
	Processor    *workerproc.Processor
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.UploadDir) == "" {
		cfg.UploadDir = "./uploads"
	}
	ctx := context.Background()

	sqlDB, repo, err := buildRepo(ctx, cfg)
	if err != nil {
		return nil, err
	}

	producer, consumer, err := buildQueue(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store := cache.NewMemory()

	svc := &decks.Service{
		Repo:      repo,
		Queue:     producer,
		Cache:     store,
		UploadDir: cfg.UploadDir,
	}
	handler := decks.NewHandler(svc)

	app := &App{
		Config:       cfg,
		DB:           sqlDB,
		Repo:         repo,
		Producer:     producer,
		Consumer:     consumer,
		Cache:        store,
		DecksService: svc,
		DecksHandler: handler,
		Processor:    &workerproc.Processor{Repo: repo, Cache: store},
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:       cfg,
		DecksHandler: handler,
	})

	return app, nil
}

// buildRepo picks the store backend: Postgres when DATABASE_URL is set,
// SQLite when SQLITE_PATH is set, in-memory otherwise (dev only).
func buildRepo(ctx context.Context, cfg config.Config) (*sql.DB, decks.Repo, error) {
	if strings.TrimSpace(cfg.DatabaseURL) != "" {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
		if err != nil {
			if isDevLike(cfg.Env) {
				log.Printf("bootstrap: database connect failed; using in-memory repository: %v", err)
				return nil, decks.NewMemoryRepo(), nil
			}
			return nil, nil, err
		}
		if err := db.RunMigrations(ctx, sqlDB); err != nil {
			sqlDB.Close()
			return nil, nil, fmt.Errorf("run migrations: %w", err)
		}
		return sqlDB, &decks.PGRepo{DB: sqlDB}, nil
	}

	if strings.TrimSpace(cfg.SQLitePath) != "" {
		sqlDB, err := db.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return sqlDB, &decks.SQLiteRepo{DB: sqlDB}, nil
	}

	if !isDevLike(cfg.Env) {
		return nil, nil, fmt.Errorf("DATABASE_URL or SQLITE_PATH is required")
	}
	log.Printf("bootstrap: no database configured; using in-memory repository")
	return nil, decks.NewMemoryRepo(), nil
}

// buildQueue picks SQS when DF_SQS_QUEUE_URL is set, otherwise an
// in-process queue consumed by the embedded worker.
func buildQueue(ctx context.Context, cfg config.Config) (queue.Producer, queue.Consumer, error) {
	if strings.TrimSpace(cfg.QueueURL) != "" {
		sqsQueue, err := queue.NewSQSQueue(ctx)
		if err != nil {
			return nil, nil, err
		}
		return sqsQueue, sqsQueue, nil
	}
	mem := queue.NewMemory(0)
	return mem, mem, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
