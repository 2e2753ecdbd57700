// Package compiler produces skeleton content artifacts: structurally complete
// per the brand's policy and the request's intent/form, but with no prose.
package compiler

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/content-factory/internal/types"
)

// Section ids emitted by the compiler. Every downstream collaborator
// addresses sections by these ids.
const (
	SectionIntro     = "intro"
	SectionHowChosen = "how_chosen"
	SectionPicks     = "picks"
	SectionCoreIdea  = "core_idea"
	SectionClosing   = "closing"
)

// ArtifactVersion is the current content artifact format version.
const ArtifactVersion = "1.0"

// MetaRole is the block metadata key marking compiler-placed blocks.
const MetaRole = "role"

// MetaRoleDisclaimer marks a policy-required disclaimer callout. Later stages
// use it to keep footer disclaimers in final position while appending content.
const MetaRoleDisclaimer = "disclaimer"

// Compile builds a skeleton artifact from a validated brand/request pair and
// the brand's context artifact. It establishes structure only: required
// sections, a recoverable topic paragraph, product slots, disclaimer blocks,
// and the checks the compiler itself can verify. It never writes prose.
func Compile(brand *types.BrandProfile, req *types.ContentRequest, brandContext *types.BrandContextArtifact, runID string) *types.ContentArtifact {
	topic := ResolveTopic(brand, req)

	personaCfg := brand.PersonaByDomain[req.Domain]
	modifiers := make([]string, 0, len(personaCfg.PersonaModifiers))
	for _, m := range personaCfg.PersonaModifiers {
		modifiers = append(modifiers, string(m))
	}

	artifact := &types.ContentArtifact{
		ArtifactVersion: ArtifactVersion,
		BrandID:         brand.BrandID,
		RunID:           runID,
		GeneratedAt:     time.Now().UTC().Format(time.RFC3339),

		Intent:       string(req.Intent),
		Form:         string(req.Form),
		Domain:       string(req.Domain),
		ContentDepth: string(brand.ContentStrategy.DefaultContentDepth),

		Audience: types.ArtifactAudience{
			PrimaryAudience:        string(brand.Audience.PrimaryAudience),
			AudienceSophistication: string(brand.Audience.AudienceSophistication),
			AudienceContext:        brand.Audience.AudienceContext,
		},
		Persona: types.ArtifactPersona{
			PrimaryPersona:      string(personaCfg.PrimaryPersona),
			PersonaModifiers:    modifiers,
			ScienceExplicitness: string(personaCfg.ScienceExplicitness),
			PersonalPresence:    string(personaCfg.PersonalPresence),
			NarrationMode:       string(personaCfg.NarrationMode),
		},
	}

	artifact.Sections = skeletonSections(req.IsProductForm())

	// Topic paragraph: the deterministic contract every downstream
	// collaborator uses to recover the resolved topic without re-parsing.
	intro := artifact.FindSection(SectionIntro)
	intro.Blocks = append([]types.Block{{
		Type: types.BlockParagraph,
		Text: fmt.Sprintf("Topic: %s", topic),
	}}, intro.Blocks...)

	// Products slot: present iff the form requires products. Never an
	// empty-but-present slice.
	if req.IsProductForm() {
		products := make([]types.Product, 0, len(req.Products.Items))
		for _, item := range req.Products.Items {
			products = append(products, types.Product{
				PickID:       item.PickID,
				Title:        item.Title,
				URL:          item.URL,
				Rating:       item.Rating,
				ReviewsCount: item.ReviewsCount,
				Provider:     item.Provider,
			})
		}
		artifact.Products = products
		artifact.Rationale = types.Rationale{
			SelectionCriteria: []string{
				"topical fit with the requested subject",
				"reputable seller with a clear product page",
				"no invented specs or performance claims",
			},
		}
	}

	insertDisclaimers(brand, artifact)

	artifact.Claims = []types.Claim{{
		ID:        "claim-topic",
		Text:      fmt.Sprintf("This piece addresses %s for a %s audience.", topic, req.Domain),
		ClaimType: types.ClaimInference,
	}}

	for _, src := range brand.BrandSources.Sources {
		artifact.Sources = append(artifact.Sources, types.ArtifactSource{
			SourceID: src.SourceID,
			Kind:     string(src.Kind),
			Ref:      src.Ref,
			Purpose:  string(src.Purpose),
			Notes:    src.Notes,
		})
	}

	artifact.Checks = types.Checks{
		// Compilation only runs after request validation passed.
		MatrixValidationPassed:  true,
		BrandPolicyChecksPassed: true,
		TopicAllowlistPassed:    true,

		RequiredSectionsPresent:     true,
		ProductsPresentWhenRequired: true,
		RequiredDisclaimersPresent:  true,

		// The context build either fully succeeded or no artifact exists.
		RobotsPolicyPassed: brandContext != nil,

		DisallowedClaimsFound: []string{},
	}

	return artifact
}

// ResolveTopic returns the request's effective topic: the explicit value when
// present, otherwise the first allowlist entry (auto mode).
func ResolveTopic(brand *types.BrandProfile, req *types.ContentRequest) string {
	if req.Topic.Value != "" {
		return req.Topic.Value
	}
	if len(brand.TopicPolicy.Allowlist) > 0 {
		return brand.TopicPolicy.Allowlist[0]
	}
	return ""
}

// skeletonSections returns the required section list for the form category.
// Each section carries one empty paragraph placeholder that the generation
// router strips before filling.
func skeletonSections(productForm bool) []types.Section {
	var layout []struct{ id, heading string }
	if productForm {
		layout = []struct{ id, heading string }{
			{SectionIntro, "Introduction"},
			{SectionHowChosen, "How These Were Chosen"},
			{SectionPicks, "The Picks"},
			{SectionClosing, "Closing Thoughts"},
		}
	} else {
		layout = []struct{ id, heading string }{
			{SectionIntro, "Introduction"},
			{SectionCoreIdea, "The Core Idea"},
			{SectionClosing, "Closing Thoughts"},
		}
	}

	sections := make([]types.Section, 0, len(layout))
	for _, l := range layout {
		sections = append(sections, types.Section{
			ID:      l.id,
			Heading: l.heading,
			Blocks:  []types.Block{{Type: types.BlockParagraph, Text: ""}},
		})
	}
	return sections
}

// insertDisclaimers places the brand's exact disclaimer text as a callout at
// every policy-required location.
func insertDisclaimers(brand *types.BrandProfile, artifact *types.ContentArtifact) {
	if !brand.DisclaimerPolicy.Required {
		return
	}

	disclaimer := types.Block{
		Type: types.BlockCallout,
		Text: brand.DisclaimerPolicy.DisclaimerText,
		Meta: map[string]any{MetaRole: MetaRoleDisclaimer},
	}

	for _, loc := range brand.DisclaimerPolicy.Locations {
		switch loc {
		case types.DisclaimerHeader:
			first := &artifact.Sections[0]
			first.Blocks = append([]types.Block{disclaimer}, first.Blocks...)
		case types.DisclaimerBeforeProducts:
			if picks := artifact.FindSection(SectionPicks); picks != nil {
				picks.Blocks = append([]types.Block{disclaimer}, picks.Blocks...)
			}
		case types.DisclaimerFooter:
			last := &artifact.Sections[len(artifact.Sections)-1]
			last.Blocks = append(last.Blocks, disclaimer)
		}
	}
}

// ExtractTopic recovers the resolved topic from an artifact's topic
// paragraph. Returns "" when no topic paragraph exists.
func ExtractTopic(artifact *types.ContentArtifact) string {
	for _, sec := range artifact.Sections {
		for _, b := range sec.Blocks {
			if b.Type != types.BlockParagraph {
				continue
			}
			if strings.HasPrefix(strings.ToLower(b.Text), "topic:") {
				_, value, _ := strings.Cut(b.Text, ":")
				return strings.TrimSpace(value)
			}
		}
	}
	return ""
}

// IsDisclaimerBlock reports whether a block is a compiler-placed disclaimer
// callout.
func IsDisclaimerBlock(b types.Block) bool {
	if b.Type != types.BlockCallout || b.Meta == nil {
		return false
	}
	role, _ := b.Meta[MetaRole].(string)
	return role == MetaRoleDisclaimer
}
