package analysis

import (
	"reflect"
	"testing"
)

func TestExtractKeyPhrasesFrequencyRanking(t *testing.T) {
	text := "cloud storage tested. data pipeline tested. cloud storage tested. cloud storage tested."
	phrases := ExtractKeyPhrases(text, 10)
	if len(phrases) < 2 {
		t.Fatalf("expected at least 2 phrases, got %v", phrases)
	}
	if phrases[0] != "cloud storage" {
		t.Fatalf("expected most frequent phrase first, got %v", phrases)
	}
}

func TestExtractKeyPhrasesPositionTieBreak(t *testing.T) {
	// Two 2-word candidates, each occurring twice; the one introduced
	// earlier in the text must rank first.
	text := "alpha beta tested.\ngamma delta tested.\nalpha beta tested.\ngamma delta tested."
	phrases := ExtractKeyPhrases(text, 10)
	want := []string{"alpha beta", "gamma delta"}
	if !reflect.DeepEqual(phrases, want) {
		t.Fatalf("phrases = %v, want %v", phrases, want)
	}
}

func TestExtractKeyPhrasesLengthTieBreak(t *testing.T) {
	// A noun run of three yields both 2-word and 3-word spans, all with
	// frequency one; the 3-word span outranks its 2-word pieces.
	phrases := ExtractKeyPhrases("modern data pipeline", 10)
	if len(phrases) == 0 || phrases[0] != "modern data pipeline" {
		t.Fatalf("phrases = %v, want leading %q", phrases, "modern data pipeline")
	}
	found := map[string]bool{}
	for _, p := range phrases {
		found[p] = true
	}
	for _, want := range []string{"modern data", "data pipeline"} {
		if !found[want] {
			t.Fatalf("missing sub-span %q in %v", want, phrases)
		}
	}
}

func TestExtractKeyPhrasesTopN(t *testing.T) {
	text := "alpha beta tested. gamma delta tested. epsilon zeta tested."
	phrases := ExtractKeyPhrases(text, 2)
	if len(phrases) != 2 {
		t.Fatalf("expected exactly 2 phrases, got %v", phrases)
	}
}

func TestExtractKeyPhrasesSentinel(t *testing.T) {
	tests := []string{
		"",
		"it was tested and approved",
		"banana",
	}
	for _, text := range tests {
		phrases := ExtractKeyPhrases(text, 10)
		if len(phrases) != 1 || phrases[0] != KeyPhraseSentinel {
			t.Fatalf("ExtractKeyPhrases(%q) = %v, want sentinel", text, phrases)
		}
	}
}

func TestTokenizeFiltersStopWordsAndKeepsHyphens(t *testing.T) {
	tokens := tokenize("The well-known platform of the future")
	want := []string{"well-known", "platform", "future"}
	if !reflect.DeepEqual(tokens, want) {
		t.Fatalf("tokenize = %v, want %v", tokens, want)
	}
}
