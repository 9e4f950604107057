package analysis

import (
	"regexp"
	"sort"
	"strings"
)

// KeyPhraseSentinel is returned as the only element when no phrase qualifies.
const KeyPhraseSentinel = "No key phrases identified"

var tokenPattern = regexp.MustCompile(`[a-zA-Z0-9]+(?:-[a-zA-Z0-9]+)*`)

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(
		"a an the and or but if of in on for to with is are was were be been being " +
			"we our ours you your yours they their theirs he she his her hers i me my mine us " +
			"it its this that these those as at by from has have had having will would shall " +
			"can could should may might must not no nor do does did doing so than then there " +
			"here what which who whom whose when where why how all any both each few more most " +
			"other some such only own same too very just also into over under again further " +
			"once about against between through during before after above below up down out " +
			"off while because until am") {
		stopWords[w] = struct{}{}
	}
}

type candidate struct {
	phrase   string
	words    int
	count    int
	firstIdx int
}

// ExtractKeyPhrases mines 2-3 word candidate phrases from contiguous
// noun/adjective token runs and ranks them by frequency, then phrase length,
// then earliest first occurrence. The result is never empty: when nothing
// qualifies it is the single-element sentinel list.
func ExtractKeyPhrases(text string, topN int) []string {
	tokens := tokenize(text)
	tags := make([]string, len(tokens))
	for i, tok := range tokens {
		tags[i] = posTag(tok)
	}

	byPhrase := map[string]*candidate{}
	var cands []*candidate

	runStart := -1
	flush := func(end int) {
		if runStart < 0 {
			return
		}
		start := runStart
		runStart = -1
		runLen := end - start
		if runLen < 2 {
			return
		}
		for span := 2; span <= 3 && span <= runLen; span++ {
			for i := start; i+span <= end; i++ {
				phrase := strings.Join(tokens[i:i+span], " ")
				if c, ok := byPhrase[phrase]; ok {
					c.count++
					continue
				}
				c := &candidate{phrase: phrase, words: span, count: 1, firstIdx: i}
				byPhrase[phrase] = c
				cands = append(cands, c)
			}
		}
	}

	for i := range tokens {
		if phraseToken(tokens[i], tags[i]) {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		flush(i)
	}
	flush(len(tokens))

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].count != cands[j].count {
			return cands[i].count > cands[j].count
		}
		if cands[i].words != cands[j].words {
			return cands[i].words > cands[j].words
		}
		return cands[i].firstIdx < cands[j].firstIdx
	})

	var phrases []string
	for _, c := range cands {
		if c.words < 2 {
			continue
		}
		phrases = append(phrases, c.phrase)
		if topN > 0 && len(phrases) == topN {
			break
		}
	}
	if len(phrases) == 0 {
		return []string{KeyPhraseSentinel}
	}
	return phrases
}

func tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	var tokens []string
	for _, tok := range raw {
		if _, stop := stopWords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func phraseToken(token, tag string) bool {
	return strings.Contains(token, "-") || tag == "NN" || tag == "JJ"
}

// posTag is a deliberately small suffix-driven tagger. It only has to keep
// noun/adjective runs together and break them on verb-ish, adverb-ish and
// numeric tokens; linguistic accuracy beyond that is not a goal.
func posTag(token string) string {
	if strings.ContainsAny(token, "0123456789") {
		return "CD"
	}
	switch {
	case len(token) > 5 && strings.HasSuffix(token, "ing"):
		return "VB"
	case len(token) > 4 && strings.HasSuffix(token, "ed"):
		return "VB"
	case len(token) > 3 && strings.HasSuffix(token, "ly"):
		return "RB"
	}
	for _, suffix := range []string{"ive", "ous", "ful", "less", "able", "ible", "ic", "al", "ish"} {
		if len(token) > len(suffix)+1 && strings.HasSuffix(token, suffix) {
			return "JJ"
		}
	}
	return "NN"
}
