package decks

import (
	"context"
	"database/sql"
	"errors"

	"deckflow-backend/internal/analysis"
)

const deckColumns = `id, filename, upload_date, content, slide_count, status,
word_count, char_count, sentiment_score, sentiment_type, document_type,
problem, solution, market, experience, skills, key_phrases, summary`

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a pending deck and returns its ID.
func (r *PGRepo) Create(ctx context.Context, deck Deck) (int64, error) {
	const query = `
INSERT INTO decks (filename, upload_date, status)
VALUES ($1, $2, $3)
RETURNING id`
	var id int64
	err := r.DB.QueryRowContext(ctx, query, deck.Filename, deck.UploadDate, string(deck.Status)).Scan(&id)
	return id, err
}

// GetByID fetches one deck.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (Deck, error) {
	query := `SELECT ` + deckColumns + ` FROM decks WHERE id = $1`
	deck, err := scanDeck(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Deck{}, ErrNotFound
	}
	return deck, err
}

// GetByFilename fetches the most recent deck with the given filename.
func (r *PGRepo) GetByFilename(ctx context.Context, filename string) (Deck, error) {
	query := `SELECT ` + deckColumns + ` FROM decks WHERE filename = $1 ORDER BY upload_date DESC, id DESC LIMIT 1`
	deck, err := scanDeck(r.DB.QueryRowContext(ctx, query, filename))
	if errors.Is(err, sql.ErrNoRows) {
		return Deck{}, ErrNotFound
	}
	return deck, err
}

// List returns all decks, newest first.
func (r *PGRepo) List(ctx context.Context) ([]Deck, error) {
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

// MarkStatus transitions every deck with the filename to the given status.
func (r *PGRepo) MarkStatus(ctx context.Context, filename string, status Status) error {
	const query = `UPDATE decks SET status = $1 WHERE filename = $2`
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

// CompleteAnalysis writes the extracted content and analysis columns and
// marks the deck processed.
func (r *PGRepo) CompleteAnalysis(ctx context.Context, filename, content string, slideCount int, res analysis.Result) error {
	const query = `
UPDATE decks SET
    content = $1,
    slide_count = $2,
    status = $3,
    word_count = $4,
    char_count = $5,
    sentiment_score = $6,
    sentiment_type = $7,
    document_type = $8,
    problem = $9,
    solution = $10,
    market = $11,
    experience = $12,
    skills = $13,
    key_phrases = $14,
    summary = $15
WHERE filename = $16`
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDeck(row rowScanner) (Deck, error) {
	var deck Deck
	var content, sentimentType, documentType sql.NullString
	var problem, solution, market, experience, skills, keyPhrases, summary sql.NullString
	var slideCount, wordCount, charCount sql.NullInt64
	var sentimentScore sql.NullFloat64
	var status string

	err := row.Scan(
		&deck.ID,
		&deck.Filename,
		&deck.UploadDate,
		&content,
		&slideCount,
		&status,
		&wordCount,
		&charCount,
		&sentimentScore,
		&sentimentType,
		&documentType,
		&problem,
		&solution,
		&market,
		&experience,
		&skills,
		&keyPhrases,
		&summary,
	)
	if err != nil {
		return Deck{}, err
	}

	deck.Status = Status(status)
	deck.Content = content.String
	deck.SlideCount = int(slideCount.Int64)
	deck.WordCount = int(wordCount.Int64)
	deck.CharCount = int(charCount.Int64)
	deck.SentimentScore = sentimentScore.Float64
	deck.SentimentType = sentimentType.String
	deck.DocumentType = documentType.String
	deck.Problem = problem.String
	deck.Solution = solution.String
	deck.Market = market.String
	deck.Experience = experience.String
	deck.Skills = skills.String
	deck.KeyPhrases = keyPhrases.String
	deck.Summary = summary.String
	return deck, nil
}

func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

var _ Repo = (*PGRepo)(nil)
