package workerproc

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"deckflow-backend/internal/cache"
	"deckflow-backend/internal/decks"
	"deckflow-backend/internal/queue"
)

const slideXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
  <p:cSld><p:spTree><p:sp><p:txBody><a:p><a:r><a:t>%s</a:t></a:r></a:p></p:txBody></p:sp></p:spTree></p:cSld>
</p:sld>`

func writeDeck(t *testing.T, dir string, lines ...string) string {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for i, line := range lines {
		w, err := zw.Create(fmt.Sprintf("ppt/slides/slide%d.xml", i+1))
		if err != nil {
			t.Fatalf("create slide entry: %v", err)
		}
		if _, err := w.Write([]byte(fmt.Sprintf(slideXML, line))); err != nil {
			t.Fatalf("write slide entry: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	path := filepath.Join(dir, "pitch.pptx")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write pptx: %v", err)
	}
	return path
}

type env struct {
	repo  *decks.MemoryRepo
	cache *cache.Memory
	proc  *Processor
}

func newEnv(t *testing.T) *env {
	t.Helper()
	e := &env{
		repo:  decks.NewMemoryRepo(),
		cache: cache.NewMemory(),
	}
	e.proc = &Processor{Repo: e.repo, Cache: e.cache}
	return e
}

func (e *env) seed(t *testing.T, filename string) {
	t.Helper()
	if _, err := e.repo.Create(context.Background(), decks.Deck{
		Filename:   filename,
		UploadDate: time.Now().UTC(),
		Status:     decks.StatusPending,
	}); err != nil {
		t.Fatalf("seed repo: %v", err)
	}
}

func TestProcessJobCompletesDeck(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	path := writeDeck(t, t.TempDir(),
		"Our problem is churn.",
		"Our solution is automation.",
		"The market is huge.",
	)
	e.seed(t, "pitch.pptx")

	if err := e.cache.Set(ctx, cache.DashboardKey, []byte("[]"), cache.DashboardTTL); err != nil {
		t.Fatalf("prime cache: %v", err)
	}

	if err := e.proc.ProcessJob(ctx, queue.NewJob("pitch.pptx", path)); err != nil {
		t.Fatalf("ProcessJob: %v", err)
	}

	deck, err := e.repo.GetByFilename(ctx, "pitch.pptx")
	if err != nil {
		t.Fatalf("GetByFilename: %v", err)
	}
	if deck.Status != decks.StatusProcessed {
		t.Fatalf("status = %q, want processed", deck.Status)
	}
	if deck.SlideCount != 3 {
		t.Fatalf("slide_count = %d, want 3", deck.SlideCount)
	}
	if deck.DocumentType != "pitch_deck" {
		t.Fatalf("document_type = %q, want pitch_deck", deck.DocumentType)
	}
	if deck.Problem == "" || deck.Solution == "" || deck.Market == "" {
		t.Fatalf("pitch fields not persisted: %+v", deck)
	}

	if _, err := e.cache.Get(ctx, cache.DashboardKey); !errors.Is(err, cache.ErrMiss) {
		t.Fatal("dashboard cache not invalidated")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("uploaded file not removed after processing")
	}
}

func TestProcessJobMarksFailedOnExtractionError(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seed(t, "broken.pptx")

	err := e.proc.ProcessJob(ctx, queue.NewJob("broken.pptx", filepath.Join(t.TempDir(), "missing.pptx")))
	var extractErr ErrExtract
	if !errors.As(err, &extractErr) {
		t.Fatalf("expected ErrExtract, got %v", err)
	}

	deck, err := e.repo.GetByFilename(ctx, "broken.pptx")
	if err != nil {
		t.Fatalf("GetByFilename: %v", err)
	}
	if deck.Status != decks.StatusFailed {
		t.Fatalf("status = %q, want failed", deck.Status)
	}
	if deck.WordCount != 0 || deck.Summary != "" {
		t.Fatalf("failed deck has analysis columns: %+v", deck)
	}
}

func TestProcessJobRejectsInvalidJob(t *testing.T) {
	e := newEnv(t)

	cases := []queue.Job{
		{FilePath: "/tmp/x.pdf"},
		{Filename: "x.pdf"},
	}
	for _, job := range cases {
		err := e.proc.ProcessJob(context.Background(), job)
		var invalid ErrInvalidJob
		if !errors.As(err, &invalid) {
			t.Fatalf("job %+v: expected ErrInvalidJob, got %v", job, err)
		}
	}
}

func TestProcessJobUnknownFilename(t *testing.T) {
	e := newEnv(t)

	err := e.proc.ProcessJob(context.Background(), queue.NewJob("ghost.pptx", "/tmp/ghost.pptx"))
	var persist ErrPersist
	if !errors.As(err, &persist) {
		t.Fatalf("expected ErrPersist, got %v", err)
	}
	if !errors.Is(err, decks.ErrNotFound) {
		t.Fatalf("expected wrapped ErrNotFound, got %v", err)
	}
}

func TestRunnerProcessesQueuedJobs(t *testing.T) {
	e := newEnv(t)
	q := queue.NewMemory(4)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	path := writeDeck(t, t.TempDir(), "Quarterly report text.")
	e.seed(t, "pitch.pptx")
	if err := q.Push(ctx, queue.NewJob("pitch.pptx", path)); err != nil {
		t.Fatalf("push: %v", err)
	}

	runner := &Runner{Consumer: q, Processor: e.proc, ReceiveWait: 20 * time.Millisecond}
	done := make(chan error, 1)
	go func() { done <- runner.Run(ctx) }()

	deadline := time.After(5 * time.Second)
	for {
		deck, err := e.repo.GetByFilename(context.Background(), "pitch.pptx")
		if err == nil && deck.Status == decks.StatusProcessed {
			break
		}
		select {
		case <-deadline:
			t.Fatal("job not processed before deadline")
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not stop after cancel")
	}
}

func TestRunnerStopsOnCancel(t *testing.T) {
	e := newEnv(t)
	q := queue.NewMemory(1)
	ctx, cancel := context.WithCancel(context.Background())

	runner := &Runner{Consumer: q, Processor: e.proc, ReceiveWait: 10 * time.Millisecond}
	done := make(chan error, 1)
	go func() { done <- runner.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not stop after cancel")
	}
}
