package analysis

import (
	"strings"
	"unicode/utf8"
)

const (
	topKeyPhrases    = 10
	summarySentences = 3

	personalSectionLines   = 5
	experienceSectionLines = 10
	skillsSectionLines     = 10
)

// Analyze derives the full analysis record from normalized text. It is a
// pure function: identical text always yields an identical Result.
func Analyze(text string) Result {
	res := Result{
		WordCount: len(strings.Fields(text)),
		CharCount: utf8.RuneCountInString(strings.ReplaceAll(text, "\n", "")),
	}
	res.SentimentScore, res.SentimentType = ScoreSentiment(text)
	res.DocumentType = Classify(text)

	lines := splitLines(text)
	switch res.DocumentType {
	case TypePitchDeck:
		// First line containing each token wins, independently per field.
		// Later mentions never overwrite.
		for _, line := range lines {
			lowered := strings.TrimSpace(strings.ToLower(line))
			if res.Problem == "" && strings.Contains(lowered, "problem") {
				res.Problem = lowered
			}
			if res.Solution == "" && strings.Contains(lowered, "solution") {
				res.Solution = lowered
			}
			if res.Market == "" && strings.Contains(lowered, "market") {
				res.Market = lowered
			}
		}
	case TypeResume:
		for _, kw := range []string{"objective", "summary", "profile"} {
			if section, ok := ExtractSection(lines, kw, personalSectionLines); ok {
				res.Problem = section
				break
			}
		}
		if section, ok := ExtractSection(lines, "experience", experienceSectionLines); ok {
			res.Experience = section
		}
		if section, ok := ExtractSection(lines, "skills", skillsSectionLines); ok {
			res.Skills = section
		}
	default:
		res.KeyPhrases = ExtractKeyPhrases(text, topKeyPhrases)
		res.Summary = ExtractSummary(text, summarySentences)
	}

	// Universal fallback: a document always gets a problem statement, even
	// when the type-specific branch came back empty.
	if strings.TrimSpace(res.Problem) == "" {
		res.Problem = ExtractSummary(text, summarySentences)
	}

	return res
}
