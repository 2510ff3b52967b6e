// Package validation holds the required-field checks applied to inbound
// requests before anything is forwarded upstream.
package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Error is a caller input failure. Handlers surface it as HTTP 400.
type Error struct {
	Message string
	Details string
}

func (e *Error) Error() string {
	if e.Details == "" {
		return e.Message
	}
	return e.Message + ": " + e.Details
}

// Errorf builds a validation error with a formatted message
func Errorf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// Truthy reports whether v would be considered set by a loose presence
// check: nil, false, zero numbers and empty strings are not.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return t.String() != ""
		}
		return f != 0 && !math.IsNaN(f)
	case float64:
		return t != 0 && !math.IsNaN(t)
	case int:
		return t != 0
	case json.RawMessage:
		return TruthyJSON(t)
	default:
		return true
	}
}

// TruthyJSON applies Truthy to an encoded JSON value
func TruthyJSON(raw json.RawMessage) bool {
	value, err := DecodeJSON(raw)
	if err != nil {
		return len(bytes.TrimSpace(raw)) > 0
	}
	return Truthy(value)
}

// DecodeJSON decodes data keeping numbers as json.Number so they are
// forwarded in their original textual form.
func DecodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}
	return v, nil
}

// ParseParam returns v as an object. JSON-encoded strings are decoded
// first; any other value is returned unchanged.
func ParseParam(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return v, nil
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return s, nil
	}
	return DecodeJSON([]byte(trimmed))
}
