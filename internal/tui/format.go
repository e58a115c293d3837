package tui

import (
	"encoding/json"
	"fmt"

	"github.com/akyairhashvil/calpick/internal/models"
	"github.com/nleeper/goment"
)

// EncodeValue serializes an emitted picker value to JSON. Goment values are
// stored as their instant.
func EncodeValue(v any) (string, error) {
	data, err := json.Marshal(normalizeValue(v))
	if err != nil {
		return "", fmt.Errorf("encode value: %w", err)
	}
	return string(data), nil
}

// DecodeValue reads a payload written by EncodeValue back into generic JSON
// values that the picker's WriteValue accepts.
func DecodeValue(payload string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(payload), &v); err != nil {
		return nil, fmt.Errorf("decode value: %w", err)
	}
	return v, nil
}

// FormatValue renders a value for printing. Strings print as-is, everything
// else as JSON.
func FormatValue(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return EncodeValue(v)
}

func normalizeValue(v any) any {
	switch x := v.(type) {
	case *goment.Goment:
		if x == nil {
			return nil
		}
		return x.ToTime()
	case models.DateRange:
		return map[string]any{
			"from": normalizeValue(x.From),
			"to":   normalizeValue(x.To),
		}
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = normalizeValue(item)
		}
		return out
	}
	return v
}
