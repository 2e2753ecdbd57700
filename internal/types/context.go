// Package types provides type definitions for structured data used throughout the content-factory system.
package types

// FetchedSource records the outcome of fetching one declared brand source.
type FetchedSource struct {
	SourceID string `json:"source_id"`
	Kind     string `json:"kind"`
	Purpose  string `json:"purpose"`
	Ref      string `json:"ref"`

	FetchedAt string `json:"fetched_at"`
	OK        bool   `json:"ok"`

	SHA256      string `json:"sha256,omitempty"`
	BytesLength int    `json:"bytes_length,omitempty"`

	// URL sources only.
	HTTPStatus    int   `json:"http_status,omitempty"`
	RobotsAllowed *bool `json:"robots_allowed,omitempty"`

	Error string `json:"error,omitempty"`
}

// BrandSignals is the lightweight signal text mined from brand sources.
type BrandSignals struct {
	Titles       []string `json:"titles"`
	Headings     []string `json:"headings"`
	Descriptions []string `json:"descriptions"`

	PositioningSnippets []string `json:"positioning_snippets"`
	KeyTerms            []string `json:"key_terms"`
}

// BrandContextArtifact is the per-brand cache of externally fetched signal
// text, persisted to a per-brand cache file and reused across runs.
type BrandContextArtifact struct {
	ArtifactVersion string `json:"artifact_version"`
	BrandID         string `json:"brand_id"`
	GeneratedAt     string `json:"generated_at"`
	FetchUserAgent  string `json:"fetch_user_agent"`

	Sources []FetchedSource `json:"sources"`
	Signals BrandSignals    `json:"signals"`
}
