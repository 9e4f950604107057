package analysis

import (
	"sort"
	"strings"
)

// NoContentMessage is the summary for text without a single sentence.
const NoContentMessage = "No content to summarize."

const summaryPhrases = 5

// ExtractSummary picks the maxSentences highest-scoring sentences, where a
// sentence's score is the number of top key phrases it contains, and joins
// them in original document order. When the miner finds no phrases the
// summary is simply the leading sentences verbatim.
func ExtractSummary(text string, maxSentences int) string {
	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return NoContentMessage
	}
	if maxSentences <= 0 {
		maxSentences = 1
	}

	phrases := ExtractKeyPhrases(text, summaryPhrases)
	if len(phrases) == 1 && phrases[0] == KeyPhraseSentinel {
		if len(sentences) > maxSentences {
			sentences = sentences[:maxSentences]
		}
		return strings.Join(sentences, " ")
	}

	type scored struct {
		index int
		score int
	}
	ranked := make([]scored, len(sentences))
	for i, sentence := range sentences {
		lowered := strings.ToLower(sentence)
		score := 0
		for _, phrase := range phrases {
			if strings.Contains(lowered, phrase) {
				score++
			}
		}
		ranked[i] = scored{index: i, score: score}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].index < ranked[j].index
	})

	if len(ranked) > maxSentences {
		ranked = ranked[:maxSentences]
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].index < ranked[j].index })

	picked := make([]string, len(ranked))
	for i, s := range ranked {
		picked[i] = sentences[s.index]
	}
	return strings.Join(picked, " ")
}

// SplitSentences breaks text on sentence-ending punctuation followed by
// whitespace. Trailing punctuation stays attached to its sentence.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(strings.TrimSpace(text))
	for i, r := range runes {
		current.WriteRune(r)
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		atEnd := i == len(runes)-1
		if atEnd || runes[i+1] == ' ' || runes[i+1] == '\n' || runes[i+1] == '\t' || runes[i+1] == '\r' {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}
