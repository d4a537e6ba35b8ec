package extract

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// normalize classifies a parsed JSON object into one of the study payload
// shapes. Classification is by key presence, first match wins: flashcards,
// then mcqs, then summary. Objects matching none of these pass through as
// raw output with the object preserved.
func normalize(m map[string]any) Result {
	// A raw_output value that is itself JSON-encoded gets one re-parse; this
	// covers both the fallback tier's wrapper and models that nest their
	// answer under a raw_output key. Not recursive.
	if inner, ok := m["raw_output"].(string); ok {
		var v map[string]any
		if err := json.Unmarshal([]byte(inner), &v); err == nil && v != nil {
			m = v
		}
	}

	if v, ok := m["flashcards"]; ok {
		return Result{Kind: KindFlashcards, Flashcards: decodeFlashcards(v)}
	}
	if v, ok := m["mcqs"]; ok {
		return Result{Kind: KindMCQs, MCQs: decodeMCQs(v)}
	}
	if v, ok := m["summary"]; ok {
		return Result{Kind: KindSummary, Summary: asString(v)}
	}
	if s, ok := m["raw_output"].(string); ok {
		return Result{Kind: KindRaw, Raw: s}
	}
	return Result{Kind: KindRaw, Object: m, Raw: compactJSON(m)}
}

func decodeFlashcards(v any) []Flashcard {
	seq, ok := v.([]any)
	if !ok {
		return nil
	}
	cards := make([]Flashcard, 0, len(seq))
	for _, el := range seq {
		rec, ok := el.(map[string]any)
		if !ok {
			continue
		}
		cards = append(cards, Flashcard{
			Question: asString(rec["q"]),
			Answer:   asString(rec["a"]),
		})
	}
	return cards
}

func decodeMCQs(v any) []MCQItem {
	seq, ok := v.([]any)
	if !ok {
		return nil
	}
	items := make([]MCQItem, 0, len(seq))
	for _, el := range seq {
		rec, ok := el.(map[string]any)
		if !ok {
			continue
		}
		items = append(items, MCQItem{
			Question: asString(rec["q"]),
			Answer:   asString(rec["answer"]),
		})
	}
	return items
}

// asString renders a decoded JSON value as display text. Numbers keep their
// shortest representation; anything structured falls back to compact JSON.
func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	}
	return compactJSON(v)
}

func compactJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
