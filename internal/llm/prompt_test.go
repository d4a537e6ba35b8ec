package llm

import (
	"strings"
	"testing"
)

func TestBuildSummaryPrompt(t *testing.T) {
	p := BuildSummaryPrompt("cell biology notes")
	if !strings.Contains(p, "STRICT JSON") {
		t.Error("summary prompt does not demand strict JSON")
	}
	if !strings.Contains(p, `"summary"`) {
		t.Error("summary prompt does not name the summary key")
	}
	if !strings.HasSuffix(p, "cell biology notes") {
		t.Error("summary prompt does not end with the source text")
	}
}

func TestBuildFilePrompt(t *testing.T) {
	p := BuildFilePrompt()
	if !strings.Contains(p, "Return ONLY JSON") {
		t.Error("file prompt does not demand JSON-only output")
	}
	if !strings.Contains(p, `"summary"`) {
		t.Error("file prompt does not name the summary key")
	}
}

func TestBuildFlashcardPrompt(t *testing.T) {
	p := BuildFlashcardPrompt("the krebs cycle")
	for _, want := range []string{`"flashcards"`, `{"q": "", "a": ""}`, "Return ONLY JSON."} {
		if !strings.Contains(p, want) {
			t.Errorf("flashcard prompt missing %q", want)
		}
	}
	if !strings.HasSuffix(p, "the krebs cycle") {
		t.Error("flashcard prompt does not end with the source text")
	}
}
