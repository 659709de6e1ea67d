package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Decode parses a raw review document (JSON or YAML) into a generic
// key/value tree. A document whose top level is not a mapping is a
// structural fault and returns an error.
func Decode(data []byte) (map[string]any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("ingest.Decode: empty document")
	}

	if trimmed[0] == '{' {
		var doc map[string]any
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("ingest.Decode: invalid JSON: %w", err)
		}
		return doc, nil
	}

	var doc map[string]any
	if err := yaml.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("ingest.Decode: invalid document: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("ingest.Decode: top level is not a mapping")
	}
	return doc, nil
}

// The coercion helpers absorb the scalar type differences between the JSON
// decoder (all numbers are float64) and the YAML decoder (ints stay ints).

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func asSlice(v any) ([]any, bool) {
	s, ok := v.([]any)
	return s, ok
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
