package extract

import "strings"

// TextAccessor is the accessor-bearing part shape: an object that yields its
// text through a method rather than a field.
type TextAccessor interface {
	Text() string
}

// Candidate is one alternative completion from a model response. Parts holds
// the candidate's content fragments in document order; each element must be a
// TextAccessor, a map[string]any with a "text" key, or a plain string. Any
// other shape is skipped.
type Candidate struct {
	Parts        []any
	FinishReason string
}

// Response is the provider-neutral view of a model response that the pipeline
// consumes. Adapters (e.g. the Gemini client) construct it from SDK types.
type Response struct {
	Candidates []Candidate
}

// resolvePart normalizes the three accepted part shapes into plain text.
// Probing happens only here, once, at the boundary.
func resolvePart(p any) (string, bool) {
	switch t := p.(type) {
	case TextAccessor:
		return t.Text(), true
	case map[string]any:
		if s, ok := t["text"].(string); ok {
			return s, true
		}
		return "", false
	case string:
		return t, true
	}
	return "", false
}

// collectText flattens the first candidate's parts into one string with no
// separator. A nil result pointer means success; otherwise it carries the
// tagged failure to hand back unchanged.
func collectText(resp *Response) (string, *Result) {
	if resp == nil {
		res := errorResult(ErrNoResponse, "no response from model")
		return "", &res
	}
	if len(resp.Candidates) == 0 {
		res := errorResult(ErrNoCandidates, "no candidates in model response")
		return "", &res
	}

	// Only the first candidate is ever consulted.
	cand := resp.Candidates[0]
	if len(cand.Parts) == 0 {
		detail := "no text returned"
		if cand.FinishReason != "" {
			detail += "; finish_reason=" + cand.FinishReason
		}
		res := errorResult(ErrNoText, detail)
		return "", &res
	}

	var b strings.Builder
	for _, p := range cand.Parts {
		if text, ok := resolvePart(p); ok {
			b.WriteString(text)
		}
	}
	return b.String(), nil
}
