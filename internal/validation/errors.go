package validation

import (
	"fmt"
	"strings"
)

// ArtifactContractError reports structural violations of the artifact's
// contract with its brand and request. All violations are collected before
// failing.
type ArtifactContractError struct {
	Problems []string
}

func (e *ArtifactContractError) Error() string {
	var b strings.Builder
	b.WriteString("artifact validation failed:")
	for _, p := range e.Problems {
		b.WriteString(fmt.Sprintf("\n- %s", p))
	}
	return b.String()
}

// ChannelError reports channel QA failures: deliverability and shape problems
// that would produce broken rendered outputs. All failures are collected
// before failing.
type ChannelError struct {
	Problems []string
}

func (e *ChannelError) Error() string {
	var b strings.Builder
	b.WriteString("channel QA failed:")
	for _, p := range e.Problems {
		b.WriteString(fmt.Sprintf("\n- %s", p))
	}
	return b.String()
}
