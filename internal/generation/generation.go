// Package generation fills compiled artifact skeletons with deterministic,
// brand-agnostic prose. Brand-specific inputs flow in as data only.
package generation

import (
	"fmt"
	"strings"

	"github.com/jonathan/content-factory/internal/compiler"
	"github.com/jonathan/content-factory/internal/types"
)

// Path identifies which generation routine fills the artifact.
type Path string

// Path values
const (
	PathThoughtLeadership     Path = "thought_leadership"
	PathProductRecommendation Path = "product_recommendation"
)

// Banned vocabulary for thought-leadership output. Affiliate substrings are
// matched anywhere in the rendered text; buying-guide tokens are kept
// conservative and only enforced on this path.
var affiliateBannedSubstrings = []string{
	"amazon",
	"affiliate",
	"what to buy",
	"worth buying",
	"buying guide",
	"buyers guide",
	"buy now",
}

var buyingGuideBannedTokens = []string{
	"picks",
	"top picks",
	"deal",
	"discount",
	"price",
}

// Route returns the generation path for a request: product forms take the
// product-recommendation path, everything else is thought leadership.
func Route(req *types.ContentRequest) Path {
	if req.IsProductForm() {
		return PathProductRecommendation
	}
	return PathThoughtLeadership
}

// Fill populates the artifact's sections in place, routed by form. It strips
// the compiler's empty placeholder paragraphs, writes section prose, and on
// the thought-leadership path enforces the banned-vocabulary policy over the
// full artifact text.
func Fill(brand *types.BrandProfile, req *types.ContentRequest, artifact *types.ContentArtifact) (Path, error) {
	path := Route(req)

	for i := range artifact.Sections {
		stripEmptyParagraphs(&artifact.Sections[i])
	}

	switch path {
	case PathThoughtLeadership:
		if err := fillThoughtLeadership(req, artifact); err != nil {
			return path, err
		}
	case PathProductRecommendation:
		if err := fillProductRecommendation(artifact); err != nil {
			return path, err
		}
	}

	artifact.Claims = append(artifact.Claims, types.Claim{
		ID:        "claim-editorial-basis",
		Text:      "The guidance in this piece is general editorial advice, not individualized recommendations.",
		ClaimType: types.ClaimAdvice,
	})

	return path, nil
}

func fillThoughtLeadership(req *types.ContentRequest, artifact *types.ContentArtifact) error {
	topic := compiler.ExtractTopic(artifact)
	if topic == "" {
		topic = "the topic"
	}

	intro := artifact.FindSection(compiler.SectionIntro)
	if intro == nil && len(artifact.Sections) > 0 {
		intro = &artifact.Sections[0]
	}
	if intro != nil {
		appendParagraph(intro, fmt.Sprintf(
			"This piece explores %s from a %s lens. "+
				"The goal is clarity: what matters, what doesn't, and how to think about it without hype.",
			topic, req.Domain,
		))
	}

	if core := artifact.FindSection(compiler.SectionCoreIdea); core != nil {
		appendBullets(core, []string{
			"Start with the constraint: what outcome are you optimizing for?",
			"Name the trade-off explicitly (speed vs. quality, risk vs. flexibility, cost vs. control).",
			"Choose one principle you can apply repeatedly, not a one-off tactic.",
		})
	}

	if closing := artifact.FindSection(compiler.SectionClosing); closing != nil {
		appendParagraph(closing,
			"If you can articulate the constraint and the trade-off, the right next step becomes obvious. "+
				"Keep it simple, and measure what you actually care about.")
	}

	return assertNonAffiliate(artifact)
}

func fillProductRecommendation(artifact *types.ContentArtifact) error {
	if len(artifact.Products) == 0 {
		return &Error{Message: "product recommendation generation requires artifact products"}
	}

	if intro := artifact.FindSection(compiler.SectionIntro); intro != nil {
		appendParagraph(intro,
			"This list is based on your provided products. It avoids invented specs, prices, and performance claims.")
	}

	if how := artifact.FindSection(compiler.SectionHowChosen); how != nil {
		appendBullets(how, []string{
			"Match the topic and intended use-case.",
			"Prefer reputable sellers and clear product pages.",
			"Avoid overstating performance when details are unknown.",
		})
	}

	if picks := artifact.FindSection(compiler.SectionPicks); picks != nil {
		items := make([]string, 0, len(artifact.Products))
		for _, p := range artifact.Products {
			items = append(items, fmt.Sprintf("%s - %s", p.Title, p.URL))
		}
		appendBullets(picks, items)
	}

	if closing := artifact.FindSection(compiler.SectionClosing); closing != nil {
		appendParagraph(closing,
			"If you're unsure, start with the option that best matches your constraints, then adjust after real-world use.")
	}

	return nil
}

// assertNonAffiliate scans every heading, block text, and list item for
// banned commercial vocabulary.
func assertNonAffiliate(artifact *types.ContentArtifact) error {
	text := strings.ToLower(artifactText(artifact))

	for _, s := range affiliateBannedSubstrings {
		if strings.Contains(text, s) {
			return &BannedVocabularyError{Category: "affiliate", Term: s}
		}
	}
	for _, tok := range buyingGuideBannedTokens {
		if strings.Contains(text, tok) {
			return &BannedVocabularyError{Category: "buying-guide", Term: tok}
		}
	}
	return nil
}

func artifactText(artifact *types.ContentArtifact) string {
	var parts []string
	for _, sec := range artifact.Sections {
		if sec.Heading != "" {
			parts = append(parts, sec.Heading)
		}
		for _, b := range sec.Blocks {
			if b.Text != "" {
				parts = append(parts, b.Text)
			}
			for _, it := range b.Items {
				if it != "" {
					parts = append(parts, it)
				}
			}
		}
	}
	return strings.Join(parts, "\n")
}

func stripEmptyParagraphs(section *types.Section) {
	cleaned := section.Blocks[:0]
	for _, b := range section.Blocks {
		if b.Type == types.BlockParagraph && strings.TrimSpace(b.Text) == "" {
			continue
		}
		cleaned = append(cleaned, b)
	}
	section.Blocks = cleaned
}

// appendParagraph adds prose to a section, keeping any trailing disclaimer
// callout in final position.
func appendParagraph(section *types.Section, text string) {
	insertBlock(section, types.Block{Type: types.BlockParagraph, Text: strings.TrimSpace(text)})
}

func appendBullets(section *types.Section, items []string) {
	cleaned := make([]string, 0, len(items))
	for _, it := range items {
		if s := strings.TrimSpace(it); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	if len(cleaned) == 0 {
		return
	}
	insertBlock(section, types.Block{Type: types.BlockBullets, Items: cleaned})
}

func insertBlock(section *types.Section, block types.Block) {
	at := len(section.Blocks)
	for at > 0 && compiler.IsDisclaimerBlock(section.Blocks[at-1]) {
		at--
	}
	section.Blocks = append(section.Blocks, types.Block{})
	copy(section.Blocks[at+1:], section.Blocks[at:])
	section.Blocks[at] = block
}
