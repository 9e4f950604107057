package decks

import (
	"context"
	"database/sql"
	"errors"

	"deckflow-backend/internal/analysis"
)

// SQLiteRepo implements Repo using SQLite. Queries mirror PGRepo with
// positional placeholders.
type SQLiteRepo struct {
	DB *sql.DB
}

func (r *SQLiteRepo) Create(ctx context.Context, deck Deck) (int64, error) {
	const query = `
INSERT INTO decks (filename, upload_date, status)
VALUES (?, ?, ?)`
	res, err := r.DB.ExecContext(ctx, query, deck.Filename, deck.UploadDate, string(deck.Status))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *SQLiteRepo) GetByID(ctx context.Context, id int64) (Deck, error) {
	query := `SELECT ` + deckColumns + ` FROM decks WHERE id = ?`
	deck, err := scanDeck(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Deck{}, ErrNotFound
	}
	return deck, err
}

func (r *SQLiteRepo) GetByFilename(ctx context.Context, filename string) (Deck, error) {
	query := `SELECT ` + deckColumns + ` FROM decks WHERE filename = ? ORDER BY upload_date DESC, id DESC LIMIT 1`
	deck, err := scanDeck(r.DB.QueryRowContext(ctx, query, filename))
	if errors.Is(err, sql.ErrNoRows) {
		return Deck{}, ErrNotFound
	}
	return deck, err
}

func (r *SQLiteRepo) List(ctx context.Context) ([]Deck, error) {
	query := `SELECT ` + deckColumns + ` FROM decks ORDER BY upload_date DESC, id DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Deck
	for rows.Next() {
		deck, err := scanDeck(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, deck)
	}
	return out, rows.Err()
}

func (r *SQLiteRepo) MarkStatus(ctx context.Context, filename string, status Status) error {
	const query = `UPDATE decks SET status = ? WHERE filename = ?`
	res, err := r.DB.ExecContext(ctx, query, string(status), filename)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteRepo) CompleteAnalysis(ctx context.Context, filename, content string, slideCount int, res analysis.Result) error {
	const query = `
UPDATE decks SET
    content = ?,
    slide_count = ?,
    status = ?,
    word_count = ?,
    char_count = ?,
    sentiment_score = ?,
    sentiment_type = ?,
    document_type = ?,
    problem = ?,
    solution = ?,
    market = ?,
    experience = ?,
    skills = ?,
    key_phrases = ?,
    summary = ?
WHERE filename = ?`
	out, err := r.DB.ExecContext(ctx, query,
		content,
		slideCount,
		string(StatusProcessed),
		res.WordCount,
		res.CharCount,
		res.SentimentScore,
		string(res.SentimentType),
		string(res.DocumentType),
		nullIfEmpty(res.Problem),
		nullIfEmpty(res.Solution),
		nullIfEmpty(res.Market),
		nullIfEmpty(res.Experience),
		nullIfEmpty(res.Skills),
		nullIfEmpty(JoinKeyPhrases(res.KeyPhrases)),
		nullIfEmpty(res.Summary),
		filename,
	)
	if err != nil {
		return err
	}
	affected, _ := out.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*SQLiteRepo)(nil)
