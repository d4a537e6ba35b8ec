package extract

import (
	"strings"
	"testing"
)

// accessorPart is the accessor-bearing part shape.
type accessorPart struct{ text string }

func (p accessorPart) Text() string { return p.text }

// panicPart simulates a misbehaving part implementation.
type panicPart struct{}

func (panicPart) Text() string { panic("broken part") }

func TestParseModelResponseNilResponse(t *testing.T) {
	res := ParseModelResponse(nil)
	if res.Kind != KindError || res.ErrKind != ErrNoResponse {
		t.Fatalf("got %+v, want %s error", res, ErrNoResponse)
	}
}

func TestParseModelResponseNoCandidates(t *testing.T) {
	res := ParseModelResponse(&Response{})
	if res.Kind != KindError || res.ErrKind != ErrNoCandidates {
		t.Fatalf("got %+v, want %s error", res, ErrNoCandidates)
	}
}

func TestParseModelResponseNoParts(t *testing.T) {
	resp := &Response{Candidates: []Candidate{{FinishReason: "SAFETY"}}}
	res := ParseModelResponse(resp)
	if res.Kind != KindError || res.ErrKind != ErrNoText {
		t.Fatalf("got %+v, want %s error", res, ErrNoText)
	}
	if !strings.Contains(res.Detail, "SAFETY") {
		t.Errorf("Detail = %q, want finish reason included", res.Detail)
	}
}

func TestParseModelResponsePartShapes(t *testing.T) {
	resp := &Response{Candidates: []Candidate{{
		Parts: []any{
			accessorPart{text: `{"summary": `},
			map[string]any{"text": `"split`},
			` across parts"}`,
			42, // unrecognized shape, skipped
		},
	}}}
	res := ParseModelResponse(resp)
	if res.Kind != KindSummary {
		t.Fatalf("Kind = %s, want %s (%+v)", res.Kind, KindSummary, res)
	}
	if res.Summary != "split across parts" {
		t.Errorf("Summary = %q, want %q", res.Summary, "split across parts")
	}
}

func TestParseModelResponseFirstCandidateOnly(t *testing.T) {
	resp := &Response{Candidates: []Candidate{
		{Parts: []any{`{"summary": "first"}`}},
		{Parts: []any{`{"summary": "second"}`}},
	}}
	res := ParseModelResponse(resp)
	if res.Summary != "first" {
		t.Errorf("Summary = %q, want the first candidate only", res.Summary)
	}
}

func TestParseModelResponseRecoversPanic(t *testing.T) {
	resp := &Response{Candidates: []Candidate{{Parts: []any{panicPart{}}}}}
	res := ParseModelResponse(resp)
	if res.Kind != KindError || res.ErrKind != ErrUnexpected {
		t.Fatalf("got %+v, want %s error", res, ErrUnexpected)
	}
	if !strings.Contains(res.Detail, "broken part") {
		t.Errorf("Detail = %q, want panic value included", res.Detail)
	}
}

func TestResolvePart(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   string
		wantOK bool
	}{
		{"accessor", accessorPart{text: "a"}, "a", true},
		{"mapping", map[string]any{"text": "b"}, "b", true},
		{"plain string", "c", "c", true},
		{"mapping without text", map[string]any{"data": "x"}, "", false},
		{"mapping with non-string text", map[string]any{"text": 7}, "", false},
		{"unsupported", 3.14, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolvePart(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("resolvePart(%v) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
