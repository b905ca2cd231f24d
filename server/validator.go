package server

import (
	"encoding/json"
	"fmt"
	"strings"
)

type fieldKind int

const (
	kindString fieldKind = iota
	kindList
	kindInt
)

func (k fieldKind) String() string {
	switch k {
	case kindString:
		return "string"
	case kindList:
		return "list"
	case kindInt:
		return "int"
	}
	return "unknown"
}

func (k fieldKind) matches(v any) bool {
	switch k {
	case kindString:
		_, ok := v.(string)
		return ok
	case kindList:
		_, ok := v.([]any)
		return ok
	case kindInt:
		n, ok := v.(json.Number)
		if !ok {
			return false
		}
		_, err := n.Int64()
		return err == nil
	}
	return false
}

// fieldSpec pairs a field name with its expected kind. Order matters: type
// checks run in declaration order and stop at the first mismatch.
type fieldSpec struct {
	name string
	kind fieldKind
}

type validationError struct {
	Message string
}

func (e *validationError) Error() string {
	return e.Message
}

// validatePayload checks required fields and field types on a decoded body.
// Missing fields are reported all at once, in the order given; a type
// mismatch fails immediately. Fields absent from the body are never
// type-checked, and unknown fields pass through unchallenged. The payload
// itself is left untouched; defaulting is the handler's job.
func validatePayload(required []string, data map[string]any, types []fieldSpec) *validationError {
	var missing []string
	for _, field := range required {
		if _, ok := data[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return &validationError{
			Message: "Missing required fields: " + strings.Join(missing, ", "),
		}
	}

	for _, spec := range types {
		v, ok := data[spec.name]
		if !ok {
			continue
		}
		if !spec.kind.matches(v) {
			return &validationError{
				Message: fmt.Sprintf("Field %q must be of type %s", spec.name, spec.kind),
			}
		}
	}

	return nil
}

func stringField(data map[string]any, name string) string {
	s, _ := data[name].(string)
	return s
}

// listField narrows a validated list to its string elements. The catalog
// contract declares these as sequences of strings; anything else in the list
// is dropped rather than rejected.
func listField(data map[string]any, name string) []string {
	out := []string{}
	items, _ := data[name].([]any)
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func intField(data map[string]any, name string, fallback int) int {
	n, ok := data[name].(json.Number)
	if !ok {
		return fallback
	}
	v, err := n.Int64()
	if err != nil {
		return fallback
	}
	return int(v)
}
