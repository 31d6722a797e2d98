package diagnostic

import "fmt"

// Error is the failure returned by every stage of a directive expansion.
type Error struct {
	// Kind classifies the failure.
	Kind Kind
	// Field names the offending option, when there is one.
	Field string
	// Message is the human-readable description.
	Message string
	// Err is the underlying cause, if any.
	Err error
}

// Errorf creates an Error of the given kind with a formatted message.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error of the given kind around a cause.
func Wrap(kind Kind, err error, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}
