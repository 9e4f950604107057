package decks

import (
	"strings"
	"time"
)

// Status is the lifecycle state of an uploaded deck.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusProcessed  Status = "processed"
	StatusFailed     Status = "failed"
)

// Deck is one uploaded document and its analysis columns. Analysis fields
// are zero until the worker completes the job.
type Deck struct {
	ID             int64
	Filename       string
	UploadDate     time.Time
	Content        string
	SlideCount     int
	Status         Status
	WordCount      int
	CharCount      int
	SentimentScore float64
	SentimentType  string
	DocumentType   string
	Problem        string
	Solution       string
	Market         string
	Experience     string
	Skills         string
	KeyPhrases     string
	Summary        string
}

// JoinKeyPhrases renders a phrase list as the stored display string. The
// join is lossy for phrases containing ", "; the stored form is display
// only and never parsed back.
func JoinKeyPhrases(phrases []string) string {
	return strings.Join(phrases, ", ")
}
