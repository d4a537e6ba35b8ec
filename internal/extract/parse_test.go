package extract

import "testing"

func TestParseTieredStrict(t *testing.T) {
	m := parseTiered(`{"summary": "hello", "n": 2}`)
	if m["summary"] != "hello" {
		t.Errorf("summary = %v, want hello", m["summary"])
	}
	if m["n"] != float64(2) {
		t.Errorf("n = %v, want 2", m["n"])
	}
}

func TestParseTieredLenient(t *testing.T) {
	tests := []struct {
		name string
		in   string
		key  string
		want string
	}{
		{"unquoted key single quotes", `{summary: 'hi'}`, "summary", "hi"},
		{"trailing comma", `{"summary": "hi",}`, "summary", "hi"},
		{"comments", "{\n// a comment\n\"summary\": \"hi\"\n}", "summary", "hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := parseTiered(tt.in)
			if _, raw := m["raw_output"]; raw {
				t.Fatalf("parseTiered(%q) fell through to raw_output: %v", tt.in, m)
			}
			if got := m[tt.key]; got != tt.want {
				t.Errorf("parseTiered(%q)[%s] = %v, want %q", tt.in, tt.key, got, tt.want)
			}
		})
	}
}

func TestParseTieredFallback(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"prose", "not json at all", "not json at all"},
		{"trims", "  padded  ", "padded"},
		{"empty", "", ""},
		{"merged objects", `{"a":1} mid {"b":2}`, `{"a":1} mid {"b":2}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := parseTiered(tt.in)
			raw, ok := m["raw_output"].(string)
			if !ok {
				t.Fatalf("parseTiered(%q) = %v, want raw_output wrapper", tt.in, m)
			}
			if raw != tt.want {
				t.Errorf("raw_output = %q, want %q", raw, tt.want)
			}
		})
	}
}

// Top-level JSON that is valid but not an object (arrays, scalars) has no keys
// to classify and must fall through to the raw tier.
func TestParseTieredNonObject(t *testing.T) {
	for _, in := range []string{`[1, 2, 3]`, `"a string"`, `42`} {
		m := parseTiered(in)
		if _, ok := m["raw_output"]; !ok {
			t.Errorf("parseTiered(%q) = %v, want raw_output wrapper", in, m)
		}
	}
}
