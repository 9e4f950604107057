package analysis

import (
	"regexp"
	"strings"
)

// sectionKeywords are every résumé heading the extractor knows about.
// A section body ends where any other heading begins, so sections never
// bleed into each other.
var sectionKeywords = []string{
	"objective", "summary", "profile",
	"experience", "skills", "education", "certifications",
}

var jobTitlePattern = regexp.MustCompile(`(?i)(intern|engineer|developer|analyst|manager|specialist)\b`)

// ExtractSection scans lines top to bottom for a heading matching keyword
// and returns the heading line plus up to maxLines following lines,
// whitespace-collapsed and joined with single spaces. The section stops at
// the first blank line or at a line opening another known heading. Returns
// ok=false when no heading matches. Only the first match is captured.
//
// For "experience" a line carrying a job-title suffix (engineer, analyst,
// ...) also opens the section, to catch résumés that list roles without an
// explicit heading.
func ExtractSection(lines []string, keyword string, maxLines int) (string, bool) {
	headingPattern := regexp.MustCompile(`(?i)^\s*` + regexp.QuoteMeta(keyword) + `\b`)

	for i, line := range lines {
		trimmed := strings.TrimSpace(strings.ToLower(line))
		match := trimmed == keyword || headingPattern.MatchString(line)
		if !match && keyword == "experience" {
			match = jobTitlePattern.MatchString(line)
		}
		if !match {
			continue
		}

		section := []string{collapseWhitespace(line)}
		for j := i + 1; j < len(lines) && j <= i+maxLines; j++ {
			next := strings.TrimSpace(lines[j])
			if next == "" || opensOtherSection(next, keyword) {
				break
			}
			section = append(section, collapseWhitespace(lines[j]))
		}
		return strings.Join(section, " "), true
	}

	return "", false
}

func opensOtherSection(line, current string) bool {
	lowered := strings.ToLower(line)
	for _, kw := range sectionKeywords {
		if kw == current {
			continue
		}
		if strings.HasPrefix(lowered, kw) {
			rest := lowered[len(kw):]
			if rest == "" || !isWordChar(rest[0]) {
				return true
			}
		}
	}
	return false
}

func isWordChar(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
