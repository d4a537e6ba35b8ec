package extract

import "testing"

func TestValidateDocumentAccepts(t *testing.T) {
	docs := []map[string]any{
		{"summary": "a short summary"},
		{"flashcards": []any{map[string]any{"q": "q1", "a": "a1"}}},
		{"mcqs": []any{map[string]any{"q": "q1", "answer": "a1"}}},
		{"raw_output": "anything"},
		{"error": "no_candidates", "detail": "none"},
	}
	for _, doc := range docs {
		if err := ValidateDocument(doc); err != nil {
			t.Errorf("ValidateDocument(%v) = %v, want nil", doc, err)
		}
	}
}

func TestValidateDocumentRejects(t *testing.T) {
	docs := []map[string]any{
		{},
		{"summary": 42},
		{"flashcards": []any{map[string]any{"q": "only a question"}}},
		{"mcqs": []any{map[string]any{"q": "", "answer": "a"}}},
	}
	for _, doc := range docs {
		if err := ValidateDocument(doc); err == nil {
			t.Errorf("ValidateDocument(%v) = nil, want error", doc)
		}
	}
}

// Pipeline output always validates, whatever the input text looked like.
func TestPipelineOutputMatchesSchema(t *testing.T) {
	inputs := []string{
		"```json\n{\"summary\": \"hello\"}\n```",
		`{"flashcards":[{"q":"2+2?","a":"4"}]}`,
		`{summary: 'hi'}`,
		"no structure here",
		"",
	}
	for _, in := range inputs {
		doc := ExtractJSON(in).Document()
		if err := ValidateDocument(doc); err != nil {
			t.Errorf("pipeline document for %q does not validate: %v", in, err)
		}
	}
}
