package schema

import (
	"fmt"
	"strings"
)

// Error reports a structurally invalid registry document. Message and Field
// locate the offending definition when known.
type Error struct {
	Message string
	Field   string
	Reason  string
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("schema")
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
		if e.Field != "" {
			b.WriteString(".")
			b.WriteString(e.Field)
		}
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

func errorf(msg, field, format string, args ...any) *Error {
	return &Error{Message: msg, Field: field, Reason: fmt.Sprintf(format, args...)}
}
