// Package types provides type definitions for structured data used throughout the content-factory system.
package types

import "fmt"

// SchemaError represents a malformed or missing required field in a loaded
// declarative document. It aborts before any pipeline stage runs.
type SchemaError struct {
	Message string
	Cause   error
}

func (e *SchemaError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("schema error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("schema error: %s", e.Message)
}

func (e *SchemaError) Unwrap() error {
	return e.Cause
}
