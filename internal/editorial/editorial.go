package editorial

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/content-factory/internal/compiler"
	"github.com/jonathan/content-factory/internal/types"
)

// editorResult is the JSON document the copy editor returns.
type editorResult struct {
	IntroMD string `json:"intro_md"`
	HowMD   string `json:"how_md"`
	Picks   []struct {
		PickID string `json:"pick_id"`
		Body   string `json:"body"`
	} `json:"picks"`
}

type editorProduct struct {
	PickID       string  `json:"pick_id"`
	Title        string  `json:"title"`
	URL          string  `json:"url"`
	Rating       float64 `json:"rating"`
	ReviewsCount int     `json:"reviews_count"`
}

// Apply runs a body-only copy edit over a product recommendation artifact.
// Returns true when edits were applied, false when the pass does not apply
// to this artifact. Structural blocks the compiler placed (topic paragraph,
// disclaimers) are never touched.
func Apply(ctx context.Context, client Client, brand *types.BrandProfile, req *types.ContentRequest, artifact *types.ContentArtifact) (bool, error) {
	if client == nil {
		return false, nil
	}
	if req.Intent != types.IntentProductRecommendation {
		return false, nil
	}
	// The editor crafts pick bodies from product titles.
	if len(artifact.Products) == 0 {
		return false, nil
	}

	intro := artifact.FindSection(compiler.SectionIntro)
	how := artifact.FindSection(compiler.SectionHowChosen)
	picks := artifact.FindSection(compiler.SectionPicks)
	if intro == nil || how == nil || picks == nil {
		return false, nil
	}

	title := strings.TrimSpace(req.Topic.Value)
	if title == "" {
		title = fmt.Sprintf("%s: %s", req.Intent, req.Form)
	}

	introMD := blocksToMarkdown(bodyBlocks(intro.Blocks))
	howMD := blocksToMarkdown(bodyBlocks(how.Blocks))

	products := make([]editorProduct, 0, len(artifact.Products))
	for _, p := range artifact.Products {
		products = append(products, editorProduct{
			PickID:       p.PickID,
			Title:        p.Title,
			URL:          p.URL,
			Rating:       p.Rating,
			ReviewsCount: p.ReviewsCount,
		})
	}

	prompt, err := buildPrompt(title, string(brand.Audience.PrimaryAudience), string(req.Domain), introMD, howMD, products)
	if err != nil {
		return false, err
	}

	raw, err := client.GenerateJSON(ctx, prompt)
	if err != nil {
		return false, fmt.Errorf("copy editor request failed: %w", err)
	}

	var result editorResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return false, fmt.Errorf("copy editor returned invalid JSON: %w", err)
	}

	applySectionMarkdown(intro, firstNonEmpty(result.IntroMD, introMD))
	applySectionMarkdown(how, firstNonEmpty(result.HowMD, howMD))

	bodyByID := make(map[string]string, len(result.Picks))
	for _, p := range result.Picks {
		if id := strings.TrimSpace(p.PickID); id != "" {
			bodyByID[id] = strings.TrimSpace(p.Body)
		}
	}

	pickBlocks := make([]types.Block, 0, len(artifact.Products))
	for _, p := range artifact.Products {
		text := strings.TrimSpace(fmt.Sprintf("### %s\n\n%s", p.Title, bodyByID[p.PickID]))
		pickBlocks = append(pickBlocks, types.Block{Type: types.BlockParagraph, Text: text})
	}
	replaceBodyBlocks(picks, pickBlocks)

	return true, nil
}

func buildPrompt(title, audience, category, introMD, howMD string, products []editorProduct) (string, error) {
	productsJSON, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("You are a copy editor for a content studio. Polish the draft below for clarity and tone.\n")
	b.WriteString("Rules:\n")
	b.WriteString("- Do not invent specs, prices, or performance claims.\n")
	b.WriteString("- Keep each pick body under 4 sentences.\n")
	b.WriteString("- Preserve the meaning of every statement; edit wording only.\n\n")
	fmt.Fprintf(&b, "Title: %s\nAudience: %s\nCategory: %s\n\n", title, audience, category)
	fmt.Fprintf(&b, "Intro (markdown):\n%s\n\n", introMD)
	fmt.Fprintf(&b, "How these were chosen (markdown):\n%s\n\n", howMD)
	fmt.Fprintf(&b, "Products:\n%s\n\n", string(productsJSON))
	b.WriteString(`Return JSON with this exact shape: {"intro_md": string, "how_md": string, "picks": [{"pick_id": string, "body": string}]}.`)
	b.WriteString(" Include one picks entry per product, keyed by pick_id.")

	return b.String(), nil
}

// bodyBlocks filters out the structural blocks the editor must not touch.
func bodyBlocks(blocks []types.Block) []types.Block {
	var out []types.Block
	for _, b := range blocks {
		if compiler.IsDisclaimerBlock(b) {
			continue
		}
		if b.Type == types.BlockParagraph && strings.HasPrefix(strings.ToLower(b.Text), "topic:") {
			continue
		}
		out = append(out, b)
	}
	return out
}

func blocksToMarkdown(blocks []types.Block) string {
	var parts []string
	for _, b := range blocks {
		switch b.Type {
		case types.BlockParagraph, types.BlockCallout, types.BlockQuote:
			if t := strings.TrimSpace(b.Text); t != "" {
				parts = append(parts, t)
			}
		case types.BlockBullets:
			var lines []string
			for _, it := range b.Items {
				if t := strings.TrimSpace(it); t != "" {
					lines = append(lines, "- "+t)
				}
			}
			if len(lines) > 0 {
				parts = append(parts, strings.Join(lines, "\n"))
			}
		case types.BlockNumbered:
			var lines []string
			n := 1
			for _, it := range b.Items {
				if t := strings.TrimSpace(it); t != "" {
					lines = append(lines, fmt.Sprintf("%d. %s", n, t))
					n++
				}
			}
			if len(lines) > 0 {
				parts = append(parts, strings.Join(lines, "\n"))
			}
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n\n"))
}

// applySectionMarkdown replaces a section's body with one markdown paragraph
// block, keeping structural blocks in place.
func applySectionMarkdown(section *types.Section, md string) {
	replaceBodyBlocks(section, []types.Block{{Type: types.BlockParagraph, Text: strings.TrimSpace(md)}})
}

// replaceBodyBlocks swaps a section's body while preserving leading
// structural blocks and a trailing disclaimer.
func replaceBodyBlocks(section *types.Section, body []types.Block) {
	var head, tail []types.Block
	for _, b := range section.Blocks {
		if compiler.IsDisclaimerBlock(b) || (b.Type == types.BlockParagraph && strings.HasPrefix(strings.ToLower(b.Text), "topic:")) {
			head = append(head, b)
		}
	}
	// Footer disclaimers stay last.
	if n := len(head); n > 0 && len(section.Blocks) > 0 {
		last := section.Blocks[len(section.Blocks)-1]
		if compiler.IsDisclaimerBlock(last) {
			head = head[:n-1]
			tail = []types.Block{last}
		}
	}

	blocks := make([]types.Block, 0, len(head)+len(body)+len(tail))
	blocks = append(blocks, head...)
	blocks = append(blocks, body...)
	blocks = append(blocks, tail...)
	section.Blocks = blocks
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
