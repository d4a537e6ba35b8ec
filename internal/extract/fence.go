package extract

import "strings"

// StripFences removes markdown code-fence markers (```json, ```) and stray
// backticks, then trims surrounding whitespace. Idempotent.
func StripFences(s string) string {
	cleaned := strings.ReplaceAll(s, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.ReplaceAll(cleaned, "`", "")
	return strings.TrimSpace(cleaned)
}

// LocateBlock returns the span from the first '{' to the last '}', inclusive.
// The span is deliberately greedy and not nesting-aware: prose containing a
// stray brace, or multiple objects, widens the span. Callers rely on the
// lenient downstream tiers to absorb the extra noise. When no such span
// exists the input is returned unchanged.
func LocateBlock(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}
