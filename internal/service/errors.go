package service

import (
	"fmt"
	"strings"
)

// ValidationError reports bad caller input, naming the offending fields.
// Handlers surface it as a 400 problem response.
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", strings.Join(e.Fields, ", "), e.Message)
}

func newValidationError(message string, fields ...string) *ValidationError {
	return &ValidationError{Fields: fields, Message: message}
}

// DataIntegrityError reports a stored entry that fails its shape check. It is
// a persistence-layer fault, distinct from ValidationError: the record must
// never be silently coerced into a usable value.
type DataIntegrityError struct {
	EntryID string
	Field   string
	Reason  string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("entry %s: field %s %s", e.EntryID, e.Field, e.Reason)
}
