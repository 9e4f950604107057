package analysis

import (
	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"
)

// Category thresholds on the VADER compound score. Fixed, not configurable.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// ScoreSentiment computes the lexicon-based compound polarity of text in
// [-1, 1] and maps it to a three-way category.
func ScoreSentiment(text string) (float64, SentimentType) {
	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	compound := sentitext.PolarityScore(parsed).Compound

	switch {
	case compound > positiveThreshold:
		return compound, SentimentPositive
	case compound < negativeThreshold:
		return compound, SentimentNegative
	default:
		return compound, SentimentNeutral
	}
}
