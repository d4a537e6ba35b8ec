package extract

import "fmt"

// ErrorKind tags the terminal, user-visible extraction failures.
type ErrorKind string

const (
	ErrNoResponse   ErrorKind = "no_response"
	ErrNoCandidates ErrorKind = "no_candidates"
	ErrNoText       ErrorKind = "no_text"
	ErrUnexpected   ErrorKind = "unexpected_failure"
)

// Kind discriminates the Result variants. Exactly one variant is produced per call.
type Kind string

const (
	KindSummary    Kind = "summary"
	KindFlashcards Kind = "flashcards"
	KindMCQs       Kind = "mcqs"
	KindRaw        Kind = "raw_output"
	KindError      Kind = "error"
)

// Flashcard is one question/answer pair from a flashcards payload.
type Flashcard struct {
	Question string `json:"q"`
	Answer   string `json:"a"`
}

// MCQItem is one multiple-choice question with its answer.
type MCQItem struct {
	Question string `json:"q"`
	Answer   string `json:"answer"`
}

// Result is the outcome of one extraction call. Only the fields belonging to
// Kind are populated; callers switch on Kind rather than probing fields.
type Result struct {
	Kind Kind

	Summary    string
	Flashcards []Flashcard
	MCQs       []MCQItem

	// Raw carries unparsed text for KindRaw. Object is set instead when the
	// parsed value was a well-formed JSON object that matched no known shape;
	// it is preserved untouched for persistence.
	Raw    string
	Object map[string]any

	// ErrKind and Detail are populated for KindError.
	ErrKind ErrorKind
	Detail  string
}

func errorResult(kind ErrorKind, detail string) Result {
	return Result{Kind: KindError, ErrKind: kind, Detail: detail}
}

// Document returns the JSON-serializable form of the result, the shape that is
// persisted to the document store and echoed to API callers.
func (r Result) Document() map[string]any {
	switch r.Kind {
	case KindSummary:
		return map[string]any{"summary": r.Summary}
	case KindFlashcards:
		cards := make([]any, len(r.Flashcards))
		for i, c := range r.Flashcards {
			cards[i] = map[string]any{"q": c.Question, "a": c.Answer}
		}
		return map[string]any{"flashcards": cards}
	case KindMCQs:
		items := make([]any, len(r.MCQs))
		for i, m := range r.MCQs {
			items[i] = map[string]any{"q": m.Question, "answer": m.Answer}
		}
		return map[string]any{"mcqs": items}
	case KindRaw:
		if r.Object != nil {
			return r.Object
		}
		return map[string]any{"raw_output": r.Raw}
	case KindError:
		return map[string]any{"error": string(r.ErrKind), "detail": r.Detail}
	}
	return map[string]any{"error": string(ErrUnexpected), "detail": fmt.Sprintf("unknown result kind %q", r.Kind)}
}
