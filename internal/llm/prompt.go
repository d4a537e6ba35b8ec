package llm

import "strings"

// Output-token limits per prompt kind.
const (
	SummaryMaxOutputTokens   int32 = 1500
	FileMaxOutputTokens      int32 = 2000
	FlashcardMaxOutputTokens int32 = 1200
)

// BuildSummaryPrompt asks for study material as a strict JSON object with a
// single summary key.
func BuildSummaryPrompt(text string) string {
	parts := []string{
		"Generate structured study material in STRICT JSON:",
		"{",
		`  "summary": "..."`,
		"}",
		"",
		"Text to summarize:",
		text,
	}
	return strings.Join(parts, "\n")
}

// BuildFilePrompt instructs the model to read the attached file itself and
// respond with the same strict summary object. The attachment travels
// separately as a FileAttachment.
func BuildFilePrompt() string {
	parts := []string{
		"You are an AI study assistant. Extract readable text from the uploaded file.",
		"Then generate structured study material in strictly valid JSON:",
		"{",
		`    "summary": "..."`,
		"}",
		"Return ONLY JSON. No explanation text.",
	}
	return strings.Join(parts, "\n")
}

// BuildFlashcardPrompt asks for flashcards over the given source text, as one
// JSON object keyed by flashcards.
func BuildFlashcardPrompt(text string) string {
	parts := []string{
		"Your task is to return ONE single JSON object with EXACTLY the following keys:",
		"",
		"{",
		`  "flashcards": [`,
		`    {"q": "", "a": ""},`,
		`    {"q": "", "a": ""},`,
		`    {"q": "", "a": ""},`,
		`    {"q": "", "a": ""},`,
		`    {"q": "", "a": ""}`,
		"  ]",
		"}",
		"",
		"Rules:",
		"- Return ONLY JSON.",
		"- No markdown.",
		"- No extra text.",
		"- No explanations.",
		"- All questions must be based STRICTLY on the provided text.",
		"",
		"Text:",
		text,
	}
	return strings.Join(parts, "\n")
}
