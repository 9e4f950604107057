package decks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"deckflow-backend/internal/cache"
	"deckflow-backend/internal/queue"
	"deckflow-backend/internal/shared/telemetry"
	"deckflow-backend/internal/shared/util"
)

// MaxUploadBytes caps accepted upload size.
const MaxUploadBytes = 10 << 20 // 10MB

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".pptx": true,
}

// Service contains business logic for deck uploads and the dashboard.
type Service struct {
	Repo      Repo
	Queue     queue.Producer
	Cache     cache.Store
	UploadDir string
}

// Upload validates and stores the file, records a pending deck, and
// enqueues an analysis job.
func (s *Service) Upload(ctx context.Context, filename string, r io.Reader) (Deck, error) {
	filename, err := util.SanitizeFileName(filename)
	if err != nil {
		return Deck{}, fmt.Errorf("%w: filename required", ErrInvalidInput)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return Deck{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	storedPath, err := s.saveFile(filename, r)
	if err != nil {
		return Deck{}, err
	}

	deck := Deck{
		Filename:   filename,
		UploadDate: time.Now().UTC(),
		Status:     StatusPending,
	}
	id, err := s.Repo.Create(ctx, deck)
	if err != nil {
		return Deck{}, fmt.Errorf("create deck record: %w", err)
	}
	deck.ID = id

	if err := s.Queue.Push(ctx, queue.NewJob(filename, storedPath)); err != nil {
		return Deck{}, fmt.Errorf("enqueue analysis job: %w", err)
	}

	return deck, nil
}

func (s *Service) saveFile(filename string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.UploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	storedName := uuid.NewString() + "-" + filename
	storedPath := filepath.Join(s.UploadDir, storedName)

	f, err := os.Create(storedPath)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	n, err := io.Copy(f, io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		os.Remove(storedPath)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if n > MaxUploadBytes {
		os.Remove(storedPath)
		return "", ErrFileTooLarge
	}
	return storedPath, nil
}

// Get returns one deck by ID.
func (s *Service) Get(ctx context.Context, id int64) (Deck, error) {
	return s.Repo.GetByID(ctx, id)
}

// Dashboard returns all decks for display, served from the cache when a
// fresh snapshot exists. Cache failures degrade to a direct repo read.
func (s *Service) Dashboard(ctx context.Context) ([]DeckResponse, error) {
	if cached, err := s.Cache.Get(ctx, cache.DashboardKey); err == nil {
		var resp []DeckResponse
		uerr := json.Unmarshal(cached, &resp)
		if uerr == nil {
			return resp, nil
		}
		telemetry.Warn("dashboard cache entry unreadable", map[string]any{"error": uerr.Error()})
	} else if !errors.Is(err, cache.ErrMiss) {
		telemetry.Warn("dashboard cache read failed", map[string]any{"error": err.Error()})
	}

	all, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]DeckResponse, 0, len(all))
	for _, deck := range all {
		resp = append(resp, toResponse(deck))
	}

	if payload, err := json.Marshal(resp); err == nil {
		if err := s.Cache.Set(ctx, cache.DashboardKey, payload, cache.DashboardTTL); err != nil {
			telemetry.Warn("dashboard cache write failed", map[string]any{"error": err.Error()})
		}
	}

	return resp, nil
}
