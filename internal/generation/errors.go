package generation

import "fmt"

// Error represents a generation failure.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// BannedVocabularyError reports a banned term found in thought-leadership
// output. Commercial vocabulary in a non-commercial piece is a hard failure.
type BannedVocabularyError struct {
	// Category is "affiliate" or "buying-guide".
	Category string
	Term     string
}

func (e *BannedVocabularyError) Error() string {
	return fmt.Sprintf("thought leadership output contains %s term %q", e.Category, e.Term)
}
