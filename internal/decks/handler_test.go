package decks_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"deckflow-backend/internal/cache"
	"deckflow-backend/internal/decks"
	"deckflow-backend/internal/queue"
)

type testEnv struct {
	router *gin.Engine
	repo   *decks.MemoryRepo
	queue  *queue.Memory
	cache  *cache.Memory
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		repo:  decks.NewMemoryRepo(),
		queue: queue.NewMemory(16),
		cache: cache.NewMemory(),
	}
	svc := &decks.Service{
		Repo:      env.repo,
		Queue:     env.queue,
		Cache:     env.cache,
		UploadDir: t.TempDir(),
	}

	env.router = gin.New()
	decks.NewHandler(svc).RegisterRoutes(env.router.Group("/api/v1"))
	return env
}

func multipartUpload(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fw, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func TestUploadCreatesPendingDeckAndEnqueuesJob(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := multipartUpload(t, "pitch.pptx", []byte("fake pptx bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/decks", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created decks.DeckResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.Filename != "pitch.pptx" {
		t.Fatalf("filename = %q", created.Filename)
	}
	if created.Status != string(decks.StatusPending) {
		t.Fatalf("status = %q, want pending", created.Status)
	}

	job, ok, err := env.queue.Receive(context.Background(), time.Second)
	if err != nil || !ok {
		t.Fatalf("expected enqueued job, ok=%v err=%v", ok, err)
	}
	if job.Filename != "pitch.pptx" {
		t.Fatalf("job filename = %q", job.Filename)
	}
	if job.FilePath == "" {
		t.Fatal("job file_path empty")
	}
}

func TestUploadRejectsUnsupportedExtension(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := multipartUpload(t, "notes.txt", []byte("plain text"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/decks", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if env.queue.Len() != 0 {
		t.Fatal("job enqueued for rejected upload")
	}
}

func TestUploadRequiresFile(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/decks", nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestDashboardServesCachedSnapshot(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.repo.Create(ctx, decks.Deck{
		Filename:   "first.pdf",
		UploadDate: time.Now().UTC(),
		Status:     decks.StatusPending,
	}); err != nil {
		t.Fatalf("seed repo: %v", err)
	}

	get := func() []decks.DeckResponse {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/decks", nil)
		resp := httptest.NewRecorder()
		env.router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.Code)
		}
		var out []decks.DeckResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			t.Fatalf("decode dashboard: %v", err)
		}
		return out
	}

	if got := get(); len(got) != 1 {
		t.Fatalf("dashboard size = %d, want 1", len(got))
	}

	// A second record appears only after invalidation; the first response
	// was cached.
	if _, err := env.repo.Create(ctx, decks.Deck{
		Filename:   "second.pdf",
		UploadDate: time.Now().UTC(),
		Status:     decks.StatusPending,
	}); err != nil {
		t.Fatalf("seed repo: %v", err)
	}

	if got := get(); len(got) != 1 {
		t.Fatalf("expected stale cached dashboard of 1, got %d", len(got))
	}

	if err := env.cache.Delete(ctx, cache.DashboardKey); err != nil {
		t.Fatalf("invalidate: %v", err)
	}

	if got := get(); len(got) != 2 {
		t.Fatalf("dashboard size after invalidation = %d, want 2", len(got))
	}
}

func TestGetDeck(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	id, err := env.repo.Create(ctx, decks.Deck{
		Filename:   "pitch.pdf",
		UploadDate: time.Now().UTC(),
		Status:     decks.StatusPending,
	})
	if err != nil {
		t.Fatalf("seed repo: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/decks/1", nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var got decks.DeckResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != id || got.Filename != "pitch.pdf" {
		t.Fatalf("unexpected deck: %+v", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/decks/999", nil)
	resp = httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/decks/abc", nil)
	resp = httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}
