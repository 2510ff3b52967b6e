package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Step is one compiled JSON schema check with the message reported when
// the value does not satisfy it.
type Step struct {
	message string
	schema  *gojsonschema.Schema
}

// NewStep compiles a schema for use as a validation step
func NewStep(message, schema string) (*Step, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema for %q: %w", message, err)
	}
	return &Step{message: message, schema: compiled}, nil
}

// MustStep is NewStep for schemas known at compile time
func MustStep(message, schema string) *Step {
	step, err := NewStep(message, schema)
	if err != nil {
		panic(err)
	}
	return step
}

// Check validates v against the step schema
func (s *Step) Check(v any) *Error {
	result, err := s.schema.Validate(gojsonschema.NewGoLoader(v))
	if err != nil {
		return &Error{Message: s.message, Details: err.Error()}
	}
	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return &Error{Message: s.message, Details: strings.Join(details, "; ")}
}

// TruthyRequired builds an object schema whose listed properties must be
// present and not one of 0, false, "" or null.
func TruthyRequired(fields ...string) string {
	props := make([]string, 0, len(fields))
	quoted := make([]string, 0, len(fields))
	for _, field := range fields {
		props = append(props, fmt.Sprintf(`%q: {"not": {"enum": [0, false, "", null]}}`, field))
		quoted = append(quoted, fmt.Sprintf("%q", field))
	}
	return fmt.Sprintf(`{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": [%s],
  "properties": {%s}
}`, strings.Join(quoted, ", "), strings.Join(props, ", "))
}
