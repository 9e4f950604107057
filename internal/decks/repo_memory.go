package decks

import (
	"context"
	"sort"
	"sync"

	"deckflow-backend/internal/analysis"
)

// MemoryRepo is an in-memory implementation of Repo for tests and
// storage-less runs.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	data   map[int64]Deck
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[int64]Deck)}
}

func (r *MemoryRepo) Create(ctx context.Context, deck Deck) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	deck.ID = r.nextID
	r.data[deck.ID] = deck
	return deck.ID, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Deck, error) {
	if err := ctx.Err(); err != nil {
		return Deck{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	deck, ok := r.data[id]
	if !ok {
		return Deck{}, ErrNotFound
	}
	return deck, nil
}

func (r *MemoryRepo) GetByFilename(ctx context.Context, filename string) (Deck, error) {
	if err := ctx.Err(); err != nil {
		return Deck{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var found Deck
	var ok bool
	for _, deck := range r.data {
		if deck.Filename != filename {
			continue
		}
		if !ok || deck.ID > found.ID {
			found = deck
			ok = true
		}
	}
	if !ok {
		return Deck{}, ErrNotFound
	}
	return found, nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]Deck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Deck, 0, len(r.data))
	for _, deck := range r.data {
		out = append(out, deck)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UploadDate.Equal(out[j].UploadDate) {
			return out[i].UploadDate.After(out[j].UploadDate)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *MemoryRepo) MarkStatus(ctx context.Context, filename string, status Status) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var touched bool
	for id, deck := range r.data {
		if deck.Filename == filename {
			deck.Status = status
			r.data[id] = deck
			touched = true
		}
	}
	if !touched {
		return ErrNotFound
	}
	return nil
}

func (r *MemoryRepo) CompleteAnalysis(ctx context.Context, filename, content string, slideCount int, res analysis.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var touched bool
	for id, deck := range r.data {
		if deck.Filename != filename {
			continue
		}
		deck.Content = content
		deck.SlideCount = slideCount
		deck.Status = StatusProcessed
		deck.WordCount = res.WordCount
		deck.CharCount = res.CharCount
		deck.SentimentScore = res.SentimentScore
		deck.SentimentType = string(res.SentimentType)
		deck.DocumentType = string(res.DocumentType)
		deck.Problem = res.Problem
		deck.Solution = res.Solution
		deck.Market = res.Market
		deck.Experience = res.Experience
		deck.Skills = res.Skills
		deck.KeyPhrases = JoinKeyPhrases(res.KeyPhrases)
		deck.Summary = res.Summary
		r.data[id] = deck
		touched = true
	}
	if !touched {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
