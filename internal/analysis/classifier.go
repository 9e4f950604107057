package analysis

import "regexp"

// The classifier is an ordered rule list: pitch-deck phrasing dominates
// résumé headings, which dominate the generic fallback. The tables are
// package data so tests can enumerate them.

var pitchDeckPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bour problem is\b`),
	regexp.MustCompile(`(?i)\bour solution is\b`),
	regexp.MustCompile(`(?i)\bthe market is\b`),
	regexp.MustCompile(`(?i)\bproblem is\b`),
	regexp.MustCompile(`(?i)\bsolution is\b`),
}

var (
	personalSectionPattern = regexp.MustCompile(`(?i)^\s*(objective|summary|profile)\b`)
	otherSectionPattern    = regexp.MustCompile(`(?i)^\s*(experience|education|skills|certifications)\b`)
)

// Classify inspects normalized text and returns its document type.
// It short-circuits on the first satisfied rule and never fails: text
// matching neither rule set is generic.
func Classify(text string) DocumentType {
	lines := splitLines(text)

	for _, line := range lines {
		for _, pat := range pitchDeckPatterns {
			if pat.MatchString(line) {
				return TypePitchDeck
			}
		}
	}

	personal := false
	other := false
	for _, line := range lines {
		if !personal && personalSectionPattern.MatchString(line) {
			personal = true
		}
		if !other && otherSectionPattern.MatchString(line) {
			other = true
		}
		if personal && other {
			return TypeResume
		}
	}

	return TypeGeneric
}
