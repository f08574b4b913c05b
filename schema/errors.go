package schema

import "strings"

// Field error reasons
const (
	ReasonRequired    = "required"
	ReasonInvalidType = "invalid type"
	ReasonUnknown     = "unknown field"
	ReasonNotNull     = "must not be null"
)

// FieldError names one violated field and why it was rejected
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError lists every field that failed validation
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+": "+fe.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether the given field failed validation
func (e *ValidationError) Has(field string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Reason returns the reason recorded for a field, or empty string
func (e *ValidationError) Reason(field string) string {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return fe.Reason
		}
	}
	return ""
}
