// Package brandcontext builds and caches per-brand signal context from the
// brand's declared sources, gated by crawl-permission checks.
package brandcontext

import (
	"fmt"
	"strings"
)

// SourceFailure records why one declared source could not be ingested.
type SourceFailure struct {
	SourceID string
	Reason   string
}

// IngestionError aggregates every failing source in a context build. Any
// single source failing fails the whole build; no partial context is written.
type IngestionError struct {
	Failures []SourceFailure
}

func (e *IngestionError) Error() string {
	var sb strings.Builder
	sb.WriteString("brand source ingestion failed:\n")
	for _, f := range e.Failures {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", f.SourceID, f.Reason))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// NotFoundError indicates no cached context artifact exists for a brand.
type NotFoundError struct {
	BrandID string
	Path    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("brand context artifact not found for %s: %s", e.BrandID, e.Path)
}
