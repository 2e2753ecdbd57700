// Package types provides type definitions for structured data used throughout the content-factory system.
package types

// Violation represents a single validation failure.
type Violation struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Details  string `json:"details"`

	// Field names the document field that produced the violation, when known.
	Field string `json:"field,omitempty"`

	// Relation names the illegal-matrix relation for matrix violations.
	Relation string `json:"relation,omitempty"`
}

// Violations represents a collection of validation failures.
type Violations struct {
	Violations []Violation `json:"violations"`
}
