package analysis

import (
	"reflect"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"One. Two! Three?", []string{"One.", "Two!", "Three?"}},
		{"Lines too.\nSecond sentence.", []string{"Lines too.", "Second sentence."}},
		{"No terminator at all", []string{"No terminator at all"}},
		{"Version 1.5 of the tool shipped.", []string{"Version 1.5 of the tool shipped."}},
		{"", nil},
		{"   ", nil},
	}
	for _, tc := range tests {
		if got := SplitSentences(tc.text); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("SplitSentences(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestExtractSummaryNoContent(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\n"} {
		if got := ExtractSummary(text, 3); got != NoContentMessage {
			t.Fatalf("ExtractSummary(%q) = %q, want %q", text, got, NoContentMessage)
		}
	}
}

func TestExtractSummaryFallbackToLeadingSentences(t *testing.T) {
	// Sentences exist but no key phrase qualifies, so the summary is the
	// first maxSentences sentences in original order.
	text := "It was tested. It was approved. It was shipped."
	got := ExtractSummary(text, 2)
	want := "It was tested. It was approved."
	if got != want {
		t.Fatalf("summary = %q, want %q", got, want)
	}
}

func TestExtractSummaryPrefersPhraseDenseSentences(t *testing.T) {
	text := "Cloud storage tested. Banana fixed. Cloud storage tested again. Cloud storage helps teams."
	got := ExtractSummary(text, 2)
	want := "Cloud storage tested. Cloud storage helps teams."
	if got != want {
		t.Fatalf("summary = %q, want %q", got, want)
	}
}

func TestExtractSummaryKeepsDocumentOrder(t *testing.T) {
	// The highest scoring sentence comes last in the document; it must
	// still be last in the summary.
	text := "Banana fixed. Cloud storage tested. Cloud storage helps teams."
	got := ExtractSummary(text, 2)
	want := "Cloud storage tested. Cloud storage helps teams."
	if got != want {
		t.Fatalf("summary = %q, want %q", got, want)
	}
}
