package adapters

import "fmt"

// TargetMismatchError reports an adapter invoked for a delivery target it
// does not serve.
type TargetMismatchError struct {
	Adapter  string
	Field    string
	Expected string
	Got      string
}

func (e *TargetMismatchError) Error() string {
	return fmt.Sprintf("%s adapter %s mismatch: expected=%s got=%s", e.Adapter, e.Field, e.Expected, e.Got)
}

// Error represents a delivery rendering or write failure.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("adapter error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("adapter error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
