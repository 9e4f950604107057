package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"deckflow-backend/internal/bootstrap"
	"deckflow-backend/internal/shared/config"
	"deckflow-backend/internal/shared/server"
	"deckflow-backend/internal/workerproc"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap build: %v", err)
	}

	// Without an external queue the analysis worker runs in-process,
	// consuming the memory queue the upload handler feeds.
	if cfg.InlineWorker {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		runner := &workerproc.Runner{Consumer: app.Consumer, Processor: app.Processor}
		go func() {
			if err := runner.Run(ctx); err != nil {
				log.Printf("worker runner: %v", err)
			}
		}()
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
