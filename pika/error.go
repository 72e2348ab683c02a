package pika

import "fmt"

// ErrorKind classifies engine-level failures that prevent a parse from
// running at all. These are distinct from an ordinary parse failure, which
// is reported as a well-formed Err term, not a Go error.
type ErrorKind uint8

const (
	// EmptyRuleTable indicates New was called with no rules.
	EmptyRuleTable ErrorKind = iota
	// DanglingRef indicates a Ref or a Children entry names a rule index
	// outside the table.
	DanglingRef
	// InvalidConfig indicates a Config failed Validate.
	InvalidConfig
)

func (k ErrorKind) String() string {
	switch k {
	case EmptyRuleTable:
		return "EmptyRuleTable"
	case DanglingRef:
		return "DanglingRef"
	case InvalidConfig:
		return "InvalidConfig"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", uint8(k))
	}
}

// Error reports an engine-level failure, as opposed to an ordinary parse
// failure (which Run reports as an Err term).
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pika: %s: %v", e.Message, e.Cause)
	}
	return "pika: " + e.Message
}

// Unwrap returns the underlying cause, if any, for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements error comparison by Kind for errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
