package extract

import (
	"encoding/json"
	"strings"

	json5 "github.com/yosuke-furukawa/json5/encoding/json5"
)

// parseTiered decodes candidate text into a JSON object using three tiers:
// strict JSON, then JSON5 (unquoted keys, single quotes, trailing commas,
// comments), then a raw_output wrapper around the trimmed text. The last tier
// always succeeds, so this function is total.
func parseTiered(text string) map[string]any {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return map[string]any{"raw_output": ""}
	}

	data := []byte(trimmed)

	var strict any
	if err := json.Unmarshal(data, &strict); err == nil {
		if m, ok := strict.(map[string]any); ok {
			return m
		}
	}

	var lenient any
	if err := json5.Unmarshal(data, &lenient); err == nil {
		if m, ok := lenient.(map[string]any); ok {
			return m
		}
	}

	return map[string]any{"raw_output": trimmed}
}
