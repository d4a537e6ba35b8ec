// Package extract turns raw generative-model output into validated study
// material payloads. Model output is unreliable: fenced in markdown,
// interleaved with prose, or syntactically near-JSON. Every stage here is a
// pure function that degrades to a safe fallback instead of failing, so
// callers always receive exactly one well-formed Result.
package extract

import (
	"fmt"
	"strings"
)

// ExtractJSON runs the unwrap pipeline over plain text: strip fences, locate
// the candidate JSON block, parse tiered, classify. It never fails; empty
// input yields a raw result carrying an empty string.
func ExtractJSON(text string) Result {
	cleaned := StripFences(text)
	block := LocateBlock(cleaned)
	return normalize(parseTiered(block))
}

// ParseModelResponse collects candidate text from a model response and then
// runs ExtractJSON over it. Unexpected faults (a misbehaving part accessor,
// an unrecognized response shape) surface as an unexpected_failure result,
// never as a panic.
func ParseModelResponse(resp *Response) (out Result) {
	defer func() {
		if r := recover(); r != nil {
			out = errorResult(ErrUnexpected, fmt.Sprintf("parse model response: %v", r))
		}
	}()

	text, failed := collectText(resp)
	if failed != nil {
		return *failed
	}
	return ExtractJSON(text)
}

// RenderText renders flashcard and MCQ payloads as human-readable
// question/answer text: "Q{i}: ...\nA: ..." blocks (1-indexed, input order)
// joined by a blank line. Raw results render their text; summaries and
// errors render empty.
func RenderText(r Result) string {
	switch r.Kind {
	case KindFlashcards:
		blocks := make([]string, len(r.Flashcards))
		for i, c := range r.Flashcards {
			blocks[i] = fmt.Sprintf("Q%d: %s\nA: %s\n", i+1, c.Question, c.Answer)
		}
		return strings.Join(blocks, "\n")
	case KindMCQs:
		blocks := make([]string, len(r.MCQs))
		for i, m := range r.MCQs {
			blocks[i] = fmt.Sprintf("Q%d: %s\nAnswer: %s\n", i+1, m.Question, m.Answer)
		}
		return strings.Join(blocks, "\n")
	case KindRaw:
		if r.Object != nil {
			return ""
		}
		return r.Raw
	}
	return ""
}
