package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildStudyMaterialSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the document shapes this service persists. Used to
// flag malformed payloads before they reach the document store.
func BuildStudyMaterialSchema() map[string]any {
	qa := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"q": map[string]any{"type": "string", "minLength": 1},
			"a": map[string]any{"type": "string"},
		},
		"required": []string{"q", "a"},
	}
	mcq := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"q":      map[string]any{"type": "string", "minLength": 1},
			"answer": map[string]any{"type": "string"},
		},
		"required": []string{"q", "answer"},
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary":    map[string]any{"type": "string"},
			"flashcards": map[string]any{"type": "array", "items": qa},
			"mcqs":       map[string]any{"type": "array", "items": mcq},
			"raw_output": map[string]any{"type": "string"},
			"error":      map[string]any{"type": "string"},
			"detail":     map[string]any{"type": "string"},
		},
		"minProperties": 1,
	}
}

// ValidateDocument validates a result document against the study material
// schema. Callers treat a failure as advisory: the document is still
// persisted, the mismatch is only logged.
func ValidateDocument(doc map[string]any) error {
	return validateAgainstSchema(BuildStudyMaterialSchema(), doc)
}

func validateAgainstSchema(schemaMap map[string]any, doc map[string]any) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	// Round-trip through encoding/json so the validator sees plain decoded
	// values rather than arbitrary Go types.
	enc, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	var v any
	if err := json.Unmarshal(enc, &v); err != nil {
		return fmt.Errorf("unmarshal document: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("document does not match schema: %w", err)
	}
	return nil
}
