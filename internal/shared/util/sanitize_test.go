package util

import "testing"

func TestSanitizeFileNameStripsPath(t *testing.T) {
	got, err := SanitizeFileName("../../etc/passwd.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "passwd.pdf" {
		t.Fatalf("expected passwd.pdf, got %q", got)
	}
}

func TestSanitizeFileNameTrimsWhitespace(t *testing.T) {
	got, err := SanitizeFileName("  deck.pptx \n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "deck.pptx" {
		t.Fatalf("expected deck.pptx, got %q", got)
	}
}

func TestSanitizeFileNameRejectsTraversal(t *testing.T) {
	for _, name := range []string{"", " ", ".", "..", "../"} {
		if _, err := SanitizeFileName(name); err == nil {
			t.Fatalf("expected error for %q", name)
		}
	}
}
