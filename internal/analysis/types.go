// Package analysis implements the document analysis engine: document-type
// classification, résumé section extraction, key-phrase mining, extractive
// summarization, and sentiment scoring. Everything operates on normalized
// plain text and is a pure function of its input.
package analysis

// DocumentType classifies the genre of an uploaded document.
type DocumentType string

const (
	TypePitchDeck DocumentType = "pitch_deck"
	TypeResume    DocumentType = "resume"
	TypeGeneric   DocumentType = "generic"
)

// SentimentType is the three-way category derived from the compound score.
type SentimentType string

const (
	SentimentPositive SentimentType = "Positive"
	SentimentNegative SentimentType = "Negative"
	SentimentNeutral  SentimentType = "Neutral"
)

// Result holds everything the engine derives from one document's text.
// Problem/Solution/Market are set for pitch decks, Problem/Experience/Skills
// for résumés, KeyPhrases/Summary for generic text. Problem is always
// populated: when the type-specific extraction yields nothing it falls back
// to the summary.
type Result struct {
	WordCount      int
	CharCount      int
	SentimentScore float64
	SentimentType  SentimentType
	DocumentType   DocumentType

	Problem    string
	Solution   string
	Market     string
	Experience string
	Skills     string
	KeyPhrases []string
	Summary    string
}
