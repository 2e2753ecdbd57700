// Package types provides type definitions for structured data used throughout the content-factory system.
package types

// BlockType identifies the structural kind of a content block.
type BlockType string

// BlockType values
const (
	BlockParagraph BlockType = "paragraph"
	BlockBullets   BlockType = "bullets"
	BlockNumbered  BlockType = "numbered"
	BlockCallout   BlockType = "callout"
	BlockQuote     BlockType = "quote"
	BlockDivider   BlockType = "divider"
)

// Block is one typed content block inside a section.
type Block struct {
	Type  BlockType      `json:"type"`
	Text  string         `json:"text,omitempty"`
	Items []string       `json:"items,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
}

// Section is an ordered list of blocks under one heading.
type Section struct {
	ID      string  `json:"id"`
	Heading string  `json:"heading,omitempty"`
	Blocks  []Block `json:"blocks"`
}

// Product is a product pick carried inside an artifact.
type Product struct {
	PickID       string  `json:"pick_id"`
	Title        string  `json:"title"`
	URL          string  `json:"url"`
	Rating       float64 `json:"rating,omitempty"`
	ReviewsCount int     `json:"reviews_count,omitempty"`
	Provider     string  `json:"provider,omitempty"`
}

// Rationale records how picks were chosen.
type Rationale struct {
	HowChosenBlocks   []Block  `json:"how_chosen_blocks"`
	SelectionCriteria []string `json:"selection_criteria"`
}

// ClaimType classifies a claim's epistemic status.
type ClaimType string

// ClaimType values
const (
	ClaimFact      ClaimType = "fact"
	ClaimInference ClaimType = "inference"
	ClaimOpinion   ClaimType = "opinion"
	ClaimAdvice    ClaimType = "advice"
)

// Claim is one statement the artifact makes, with provenance expectations.
type Claim struct {
	ID                   string    `json:"id"`
	Text                 string    `json:"text"`
	ClaimType            ClaimType `json:"claim_type"`
	RequiresCitation     bool      `json:"requires_citation"`
	SupportedBySourceIDs []string  `json:"supported_by_source_ids"`
}

// ArtifactSource records one input source the artifact drew on.
type ArtifactSource struct {
	SourceID string `json:"source_id"`
	Kind     string `json:"kind"`
	Ref      string `json:"ref"`
	Purpose  string `json:"purpose"`
	Notes    string `json:"notes,omitempty"`
}

// Checks records which structural guarantees have been verified so far.
type Checks struct {
	MatrixValidationPassed      bool     `json:"matrix_validation_passed"`
	BrandPolicyChecksPassed     bool     `json:"brand_policy_checks_passed"`
	RequiredSectionsPresent     bool     `json:"required_sections_present"`
	ProductsPresentWhenRequired bool     `json:"products_present_when_required"`
	CitationsPresentWhenRequired bool    `json:"citations_present_when_required"`
	TopicAllowlistPassed        bool     `json:"topic_allowlist_passed"`
	RequiredDisclaimersPresent  bool     `json:"required_disclaimers_present"`
	RobotsPolicyPassed          bool     `json:"robots_policy_passed"`
	DisallowedClaimsFound       []string `json:"disallowed_claims_found"`
}

// ArtifactAudience is the audience metadata embedded in an artifact.
type ArtifactAudience struct {
	PrimaryAudience        string `json:"primary_audience"`
	AudienceSophistication string `json:"audience_sophistication"`
	AudienceContext        string `json:"audience_context,omitempty"`
}

// ArtifactPersona is the persona metadata embedded in an artifact.
type ArtifactPersona struct {
	PrimaryPersona      string   `json:"primary_persona"`
	PersonaModifiers    []string `json:"persona_modifiers"`
	ScienceExplicitness string   `json:"science_explicitness"`
	PersonalPresence    string   `json:"personal_presence"`
	NarrationMode       string   `json:"narration_mode"`
}

// ContentArtifact is the central intermediate representation of a piece of
// content. It is mutated in place by the generation router and any editorial
// collaborator, then treated as immutable once both validators pass.
type ContentArtifact struct {
	ArtifactVersion string `json:"artifact_version"`
	BrandID         string `json:"brand_id"`
	RunID           string `json:"run_id"`
	GeneratedAt     string `json:"generated_at"`

	Intent       string `json:"intent"`
	Form         string `json:"form"`
	Domain       string `json:"domain"`
	ContentDepth string `json:"content_depth"`

	Audience ArtifactAudience `json:"audience"`
	Persona  ArtifactPersona  `json:"persona"`

	Sections []Section `json:"sections"`

	// Products is nil for non-product forms; presence is a strict invariant,
	// never an empty-but-present slice.
	Products []Product `json:"products,omitempty"`

	Rationale Rationale `json:"rationale"`

	Claims  []Claim          `json:"claims"`
	Sources []ArtifactSource `json:"sources"`

	Checks Checks `json:"checks"`
}

// FindSection returns the section with the given id, or nil.
func (a *ContentArtifact) FindSection(id string) *Section {
	for i := range a.Sections {
		if a.Sections[i].ID == id {
			return &a.Sections[i]
		}
	}
	return nil
}
