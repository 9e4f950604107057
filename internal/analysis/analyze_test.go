package analysis

import (
	"reflect"
	"strings"
	"testing"
)

func TestAnalyzePitchDeck(t *testing.T) {
	text := "Our problem is X.\nOur solution is Y.\nThe market is Z."
	res := Analyze(text)

	if res.DocumentType != TypePitchDeck {
		t.Fatalf("document type = %q, want %q", res.DocumentType, TypePitchDeck)
	}
	if !strings.Contains(res.Problem, "our problem is x.") {
		t.Fatalf("problem = %q", res.Problem)
	}
	if !strings.Contains(res.Solution, "our solution is y.") {
		t.Fatalf("solution = %q", res.Solution)
	}
	if !strings.Contains(res.Market, "the market is z.") {
		t.Fatalf("market = %q", res.Market)
	}
	if res.WordCount != 12 {
		t.Fatalf("word count = %d, want 12", res.WordCount)
	}
}

func TestAnalyzePitchDeckFirstWinsPerField(t *testing.T) {
	text := "Our problem is churn.\nThe problem is really big.\nOur solution is automation.\nThe market is wide.\nAnother market remark."
	res := Analyze(text)

	if res.Problem != "our problem is churn." {
		t.Fatalf("problem = %q, want first problem line", res.Problem)
	}
	if res.Market != "the market is wide." {
		t.Fatalf("market = %q, want first market line", res.Market)
	}
}

func TestAnalyzeResume(t *testing.T) {
	text := strings.Join([]string{
		"Objective",
		"Build reliable backend systems",
		"",
		"Experience",
		"Software Engineer at Acme",
		"",
		"Skills",
		"Go, SQL, Terraform",
	}, "\n")
	res := Analyze(text)

	if res.DocumentType != TypeResume {
		t.Fatalf("document type = %q, want %q", res.DocumentType, TypeResume)
	}
	if res.Problem != "Objective Build reliable backend systems" {
		t.Fatalf("problem = %q", res.Problem)
	}
	if res.Experience != "Experience Software Engineer at Acme" {
		t.Fatalf("experience = %q", res.Experience)
	}
	if res.Skills != "Skills Go, SQL, Terraform" {
		t.Fatalf("skills = %q", res.Skills)
	}
	if res.Summary != "" || res.KeyPhrases != nil {
		t.Fatalf("resume branch must not fill generic fields: %+v", res)
	}
}

func TestAnalyzeGeneric(t *testing.T) {
	text := "Cloud storage tested. Cloud storage helps teams."
	res := Analyze(text)

	if res.DocumentType != TypeGeneric {
		t.Fatalf("document type = %q, want %q", res.DocumentType, TypeGeneric)
	}
	if len(res.KeyPhrases) == 0 || res.KeyPhrases[0] != "cloud storage" {
		t.Fatalf("key phrases = %v", res.KeyPhrases)
	}
	if res.Summary == "" || res.Summary == NoContentMessage {
		t.Fatalf("summary = %q", res.Summary)
	}
}

func TestAnalyzeUniversalProblemFallback(t *testing.T) {
	// Generic document without an extractable problem statement: problem
	// equals the computed summary.
	text := "Cloud storage tested. Cloud storage helps teams."
	res := Analyze(text)
	if res.Problem == "" || res.Problem != res.Summary {
		t.Fatalf("problem = %q, summary = %q", res.Problem, res.Summary)
	}
}

func TestAnalyzeEmptyText(t *testing.T) {
	res := Analyze("")

	if res.WordCount != 0 || res.CharCount != 0 {
		t.Fatalf("counts = %d/%d, want 0/0", res.WordCount, res.CharCount)
	}
	if res.SentimentType != SentimentNeutral {
		t.Fatalf("sentiment = %q, want %q", res.SentimentType, SentimentNeutral)
	}
	if res.DocumentType != TypeGeneric {
		t.Fatalf("document type = %q, want %q", res.DocumentType, TypeGeneric)
	}
	if res.Summary != NoContentMessage {
		t.Fatalf("summary = %q, want %q", res.Summary, NoContentMessage)
	}
	if !reflect.DeepEqual(res.KeyPhrases, []string{KeyPhraseSentinel}) {
		t.Fatalf("key phrases = %v", res.KeyPhrases)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	text := "Objective\nShip software\nExperience\nAcme Corp\nSkills\nGo"
	first := Analyze(text)
	second := Analyze(text)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Analyze is not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestAnalyzeCharCountIgnoresNewlines(t *testing.T) {
	res := Analyze("ab\ncd\n")
	if res.CharCount != 4 {
		t.Fatalf("char count = %d, want 4", res.CharCount)
	}
}
