// Package policy validates a content request against its owning brand profile
// and the illegal matrix.
package policy

import (
	"fmt"
	"strings"

	"github.com/jonathan/content-factory/internal/types"
)

// ViolationError aggregates every policy violation found in one validation
// pass. Validation never stops at the first failure, so callers always see
// the complete list in one error.
type ViolationError struct {
	Violations []types.Violation
}

func (e *ViolationError) Error() string {
	var sb strings.Builder
	sb.WriteString("request validation failed:\n")
	for _, v := range e.Violations {
		sb.WriteString(fmt.Sprintf("- %s\n", v.Details))
	}
	return strings.TrimRight(sb.String(), "\n")
}
