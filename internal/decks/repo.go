package decks

import (
	"context"

	"deckflow-backend/internal/analysis"
)

// Repo defines persistence operations for decks. Worker-side mutations are
// keyed by filename, matching the job payload.
type Repo interface {
	Create(ctx context.Context, deck Deck) (int64, error)
	GetByID(ctx context.Context, id int64) (Deck, error)
	GetByFilename(ctx context.Context, filename string) (Deck, error)
	List(ctx context.Context) ([]Deck, error)
	MarkStatus(ctx context.Context, filename string, status Status) error
	CompleteAnalysis(ctx context.Context, filename, content string, slideCount int, res analysis.Result) error
}
