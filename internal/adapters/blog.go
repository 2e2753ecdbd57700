package adapters

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/content-factory/internal/compiler"
	"github.com/jonathan/content-factory/internal/types"
)

// blogFrontmatter is the markdown frontmatter contract of the downstream
// blog build.
type blogFrontmatter struct {
	Title       string            `yaml:"title"`
	Description string            `yaml:"description"`
	PublishedAt string            `yaml:"publishedAt"`
	Categories  []string          `yaml:"categories"`
	Audience    string            `yaml:"audience"`
	Products    []frontmatterPick `yaml:"products"`
	Picks       []frontmatterStub `yaml:"picks"`
}

type frontmatterPick struct {
	PickID       string  `yaml:"pick_id"`
	CatalogKey   *string `yaml:"catalog_key"`
	Title        string  `yaml:"title"`
	URL          string  `yaml:"url"`
	Rating       float64 `yaml:"rating"`
	ReviewsCount int     `yaml:"reviews_count"`
	Description  string  `yaml:"description"`
}

type frontmatterStub struct {
	PickID string `yaml:"pick_id"`
	Body   string `yaml:"body"`
}

// RenderBlog renders the artifact as frontmatter markdown. The blog channel
// accepts both hosted and client-site destinations. Request overrides apply
// here and nowhere else.
func RenderBlog(brand *types.BrandProfile, req *types.ContentRequest, artifact *types.ContentArtifact) (*RenderedDelivery, error) {
	target := req.DeliveryTarget
	if target.Channel != types.ChannelBlogArticle {
		return nil, &TargetMismatchError{
			Adapter:  "blog",
			Field:    "channel",
			Expected: string(types.ChannelBlogArticle),
			Got:      string(target.Channel),
		}
	}
	if target.Destination != types.DestinationHostedByUs && target.Destination != types.DestinationClientWebsite {
		return nil, &TargetMismatchError{
			Adapter:  "blog",
			Field:    "destination",
			Expected: "hosted_by_us or client_website",
			Got:      string(target.Destination),
		}
	}

	publishedAt, err := blogPublishedAt(req)
	if err != nil {
		return nil, err
	}

	topic := compiler.ExtractTopic(artifact)
	title := topic
	if title == "" {
		title = fmt.Sprintf("%s: %s", req.Intent, req.Form)
	}
	description := fmt.Sprintf("%s - %s", req.Domain, req.Intent)
	categories := []string{string(req.Domain)}
	audience := string(brand.Audience.PrimaryAudience)

	if o := req.Overrides; o != nil {
		if o.Title != "" {
			title = o.Title
		}
		if o.Description != "" {
			description = o.Description
		}
		if len(o.Categories) > 0 {
			categories = o.Categories
		}
		if o.Audience != "" {
			audience = o.Audience
		}
	}

	fm := blogFrontmatter{
		Title:       title,
		Description: description,
		PublishedAt: publishedAt,
		Categories:  categories,
		Audience:    audience,
		Products:    make([]frontmatterPick, 0, len(artifact.Products)),
		Picks:       make([]frontmatterStub, 0, len(artifact.Products)),
	}
	for _, p := range artifact.Products {
		fm.Products = append(fm.Products, frontmatterPick{
			PickID:       p.PickID,
			Title:        p.Title,
			URL:          p.URL,
			Rating:       p.Rating,
			ReviewsCount: p.ReviewsCount,
		})
		fm.Picks = append(fm.Picks, frontmatterStub{PickID: p.PickID})
	}

	fmBytes, err := yaml.Marshal(fm)
	if err != nil {
		return nil, &Error{Message: "failed to marshal blog frontmatter", Cause: err}
	}

	var bodyParts []string
	for _, sec := range artifact.Sections {
		heading := sec.Heading
		if heading == "" {
			heading = headingFromID(sec.ID)
		}
		bodyParts = append(bodyParts, "## "+heading)
		if body := blocksToPlainText(sec.Blocks); body != "" {
			bodyParts = append(bodyParts, body)
		}
	}
	body := strings.TrimSpace(strings.Join(bodyParts, "\n\n")) + "\n"

	content := fmt.Sprintf("---\n%s---\n\n%s", string(fmBytes), body)

	return &RenderedDelivery{
		Filename: fmt.Sprintf("%s.md", artifact.RunID),
		MIMEType: "text/markdown",
		Content:  content,
	}, nil
}

// blogPublishedAt converts the request's publish date to UTC midnight in
// RFC3339 form.
func blogPublishedAt(req *types.ContentRequest) (string, error) {
	d, err := req.Publish.Date()
	if err != nil {
		return "", &Error{Message: "invalid publish date", Cause: err}
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC).Format(time.RFC3339), nil
}

// headingFromID derives a display heading from a section id, e.g.
// "how_chosen" becomes "How Chosen".
func headingFromID(id string) string {
	words := strings.Split(id, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
