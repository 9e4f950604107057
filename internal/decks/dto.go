package decks

import "time"

// DeckResponse is the outward-facing representation of a deck. Field names
// match the stored column names so the dashboard can bind them directly.
type DeckResponse struct {
	ID             int64     `json:"id"`
	Filename       string    `json:"filename"`
	UploadDate     time.Time `json:"upload_date"`
	SlideCount     int       `json:"slide_count"`
	Status         string    `json:"status"`
	WordCount      int       `json:"word_count"`
	CharCount      int       `json:"char_count"`
	SentimentScore float64   `json:"sentiment_score"`
	SentimentType  string    `json:"sentiment_type,omitempty"`
	DocumentType   string    `json:"document_type,omitempty"`
	Problem        string    `json:"problem,omitempty"`
	Solution       string    `json:"solution,omitempty"`
	Market         string    `json:"market,omitempty"`
	Experience     string    `json:"experience,omitempty"`
	Skills         string    `json:"skills,omitempty"`
	KeyPhrases     string    `json:"key_phrases,omitempty"`
	Summary        string    `json:"summary,omitempty"`
}

func toResponse(deck Deck) DeckResponse {
	return DeckResponse{
		ID:             deck.ID,
		Filename:       deck.Filename,
		UploadDate:     deck.UploadDate,
		SlideCount:     deck.SlideCount,
		Status:         string(deck.Status),
		WordCount:      deck.WordCount,
		CharCount:      deck.CharCount,
		SentimentScore: deck.SentimentScore,
		SentimentType:  deck.SentimentType,
		DocumentType:   deck.DocumentType,
		Problem:        deck.Problem,
		Solution:       deck.Solution,
		Market:         deck.Market,
		Experience:     deck.Experience,
		Skills:         deck.Skills,
		KeyPhrases:     deck.KeyPhrases,
		Summary:        deck.Summary,
	}
}
