package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"deckflow-backend/internal/bootstrap"
	"deckflow-backend/internal/shared/config"
	"deckflow-backend/internal/workerproc"
)

const defaultReceiveWaitSec = 5

func main() {
	cfg := config.Load()

	if strings.TrimSpace(cfg.QueueURL) == "" {
		log.Fatal("DF_SQS_QUEUE_URL is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap build: %v", err)
	}

	wait := time.Duration(envInt("DF_RECEIVE_WAIT_SECONDS", defaultReceiveWaitSec)) * time.Second

	runner := &workerproc.Runner{
		Consumer:    app.Consumer,
		Processor:   app.Processor,
		ReceiveWait: wait,
	}
	if err := runner.Run(ctx); err != nil {
		log.Fatalf("worker runner: %v", err)
	}
}

func envInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return def
	}
	return val
}
