package adapters

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/content-factory/internal/compiler"
	"github.com/jonathan/content-factory/internal/generation"
	"github.com/jonathan/content-factory/internal/types"
)

func adapterBrand() *types.BrandProfile {
	return &types.BrandProfile{
		BrandID:          "acme-living",
		BrandArchetype:   types.ArchetypeTrustedGuide,
		DomainsSupported: []types.Domain{types.DomainHome},
		DomainPrimary:    types.DomainHome,
		Audience: types.Audience{
			PrimaryAudience:        types.AudienceGeneralConsumers,
			AudienceSophistication: types.SophisticationMedium,
		},
		ContentStrategy: types.ContentStrategy{
			DefaultContentDepth: types.DepthShort,
		},
		TopicPolicy: types.TopicPolicy{
			Allowlist: []string{"home organization"},
		},
		PersonaByDomain: map[types.Domain]types.PersonaConfig{
			types.DomainHome: {
				PrimaryPersona:      types.PersonaPracticalExpert,
				ScienceExplicitness: types.ScienceImplied,
				PersonalPresence:    types.PresenceNone,
				NarrationMode:       types.NarrationThirdPersonOnly,
			},
		},
		DisclaimerPolicy: types.DisclaimerPolicy{
			Required:       true,
			DisclaimerText: "This content is for informational purposes only.",
			Locations:      []types.DisclaimerLocation{types.DisclaimerFooter},
		},
	}
}

func adapterRequest(channel types.DeliveryChannel, destination types.DeliveryDestination) *types.ContentRequest {
	return &types.ContentRequest{
		BrandID: "acme-living",
		Publish: types.Publish{PublishDate: "2099-01-15"},
		Intent:  types.IntentThoughtLeadership,
		Form:    types.FormCoreInsightEssay,
		Domain:  types.DomainHome,
		Topic:   types.Topic{Mode: types.TopicModeManual, Value: "home organization"},
		DeliveryTarget: types.DeliveryTarget{
			Destination: destination,
			Channel:     channel,
		},
		Products: types.Products{Mode: types.ProductsModeNone},
	}
}

func adapterProductRequest() *types.ContentRequest {
	req := adapterRequest(types.ChannelBlogArticle, types.DestinationClientWebsite)
	req.Intent = types.IntentProductRecommendation
	req.Form = types.FormTopXList
	req.Products = types.Products{
		Mode: types.ProductsModeManualList,
		Items: []types.ProductItem{
			{PickID: "pick-1", Title: "Shelf Organizer", URL: "https://shop.example.com/shelf", Rating: 4.5, ReviewsCount: 120},
		},
	}
	return req
}

func renderReady(t *testing.T, brand *types.BrandProfile, req *types.ContentRequest) *types.ContentArtifact {
	t.Helper()
	artifact := compiler.Compile(brand, req, nil, "run-1")
	_, err := generation.Fill(brand, req, artifact)
	require.NoError(t, err)
	return artifact
}

func TestRenderBlog_FrontmatterAndBody(t *testing.T) {
	brand := adapterBrand()
	req := adapterRequest(types.ChannelBlogArticle, types.DestinationClientWebsite)
	artifact := renderReady(t, brand, req)

	delivery, err := RenderBlog(brand, req, artifact)
	require.NoError(t, err)

	assert.Equal(t, "run-1.md", delivery.Filename)
	assert.Equal(t, "text/markdown", delivery.MIMEType)
	assert.True(t, strings.HasPrefix(delivery.Content, "---\n"))

	parts := strings.SplitN(delivery.Content, "---\n", 3)
	require.Len(t, parts, 3)

	var fm struct {
		Title       string   `yaml:"title"`
		Description string   `yaml:"description"`
		PublishedAt string   `yaml:"publishedAt"`
		Categories  []string `yaml:"categories"`
		Audience    string   `yaml:"audience"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(parts[1]), &fm))
	assert.Equal(t, "home organization", fm.Title)
	assert.Equal(t, "home - thought_leadership", fm.Description)
	assert.Equal(t, "2099-01-15T00:00:00Z", fm.PublishedAt)
	assert.Equal(t, []string{"home"}, fm.Categories)
	assert.Equal(t, "general_consumers", fm.Audience)

	body := parts[2]
	assert.Contains(t, body, "## Introduction")
	assert.Contains(t, body, "## The Core Idea")
	assert.Contains(t, body, "## Closing Thoughts")
	assert.Contains(t, body, "Topic: home organization")
	assert.Contains(t, body, "- Start with the constraint")
}

func TestRenderBlog_ProductFrontmatter(t *testing.T) {
	brand := adapterBrand()
	req := adapterProductRequest()
	artifact := renderReady(t, brand, req)

	delivery, err := RenderBlog(brand, req, artifact)
	require.NoError(t, err)

	parts := strings.SplitN(delivery.Content, "---\n", 3)
	require.Len(t, parts, 3)

	var fm struct {
		Products []struct {
			PickID     string  `yaml:"pick_id"`
			CatalogKey *string `yaml:"catalog_key"`
			Title      string  `yaml:"title"`
			Rating     float64 `yaml:"rating"`
		} `yaml:"products"`
		Picks []struct {
			PickID string `yaml:"pick_id"`
			Body   string `yaml:"body"`
		} `yaml:"picks"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(parts[1]), &fm))

	require.Len(t, fm.Products, 1)
	assert.Equal(t, "pick-1", fm.Products[0].PickID)
	assert.Equal(t, "Shelf Organizer", fm.Products[0].Title)
	assert.Equal(t, 4.5, fm.Products[0].Rating)
	assert.Nil(t, fm.Products[0].CatalogKey)

	require.Len(t, fm.Picks, 1)
	assert.Equal(t, "pick-1", fm.Picks[0].PickID)
	assert.Empty(t, fm.Picks[0].Body)
}

func TestRenderBlog_OverridesApplied(t *testing.T) {
	brand := adapterBrand()
	req := adapterRequest(types.ChannelBlogArticle, types.DestinationHostedByUs)
	req.Overrides = &types.RequestOverrides{
		Title:       "Ten Calm Shelves",
		Description: "A quieter way to organize",
		Categories:  []string{"organization", "home"},
		Audience:    "renters",
	}
	artifact := renderReady(t, brand, req)

	delivery, err := RenderBlog(brand, req, artifact)
	require.NoError(t, err)

	parts := strings.SplitN(delivery.Content, "---\n", 3)
	require.Len(t, parts, 3)

	var fm struct {
		Title       string   `yaml:"title"`
		Description string   `yaml:"description"`
		Categories  []string `yaml:"categories"`
		Audience    string   `yaml:"audience"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(parts[1]), &fm))
	assert.Equal(t, "Ten Calm Shelves", fm.Title)
	assert.Equal(t, "A quieter way to organize", fm.Description)
	assert.Equal(t, []string{"organization", "home"}, fm.Categories)
	assert.Equal(t, "renters", fm.Audience)
}

func TestRenderBlog_TargetMismatch(t *testing.T) {
	brand := adapterBrand()

	req := adapterRequest(types.ChannelEmail, types.DestinationEmailList)
	artifact := renderReady(t, brand, req)
	_, err := RenderBlog(brand, req, artifact)
	require.Error(t, err)

	var mismatch *TargetMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "channel", mismatch.Field)
	assert.Contains(t, err.Error(), "blog adapter channel mismatch")

	req = adapterRequest(types.ChannelBlogArticle, types.DestinationLinkedIn)
	artifact = renderReady(t, brand, req)
	_, err = RenderBlog(brand, req, artifact)
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "destination", mismatch.Field)
}

func TestRenderEmailPayload(t *testing.T) {
	brand := adapterBrand()
	req := adapterRequest(types.ChannelEmail, types.DestinationEmailList)
	artifact := renderReady(t, brand, req)

	payload, err := RenderEmailPayload(brand, req, artifact)
	require.NoError(t, err)

	assert.Equal(t, "home organization", payload.Subject)
	assert.NotEmpty(t, payload.Preheader)
	assert.Contains(t, payload.BodyText, "Introduction")
	assert.Contains(t, payload.BodyText, "Topic: home organization")
	assert.Contains(t, payload.BodyHTML, "<h2>Introduction</h2>")
	assert.Contains(t, payload.BodyHTML, "<ul>")
	assert.Equal(t, "acme-living", payload.Meta.BrandID)
	assert.Equal(t, "run-1", payload.Meta.RunID)
	assert.Equal(t, "thought_leadership", payload.Meta.Intent)
}

func TestRenderEmailHTML_EscapesText(t *testing.T) {
	brand := adapterBrand()
	req := adapterRequest(types.ChannelEmail, types.DestinationEmailList)
	artifact := renderReady(t, brand, req)

	closing := artifact.FindSection(compiler.SectionClosing)
	require.NotNil(t, closing)
	closing.Blocks = append([]types.Block{{
		Type: types.BlockParagraph,
		Text: `Storage <bins> & "boxes"`,
	}}, closing.Blocks...)

	payload, err := RenderEmailPayload(brand, req, artifact)
	require.NoError(t, err)
	assert.Contains(t, payload.BodyHTML, "Storage &lt;bins&gt; &amp; &#34;boxes&#34;")
	assert.NotContains(t, payload.BodyHTML, "<bins>")
}

func TestRenderEmail_DeliveryEnvelope(t *testing.T) {
	brand := adapterBrand()
	req := adapterRequest(types.ChannelEmail, types.DestinationEmailList)
	artifact := renderReady(t, brand, req)

	delivery, err := RenderEmail(brand, req, artifact)
	require.NoError(t, err)
	assert.Equal(t, "run-1.email.json", delivery.Filename)
	assert.Equal(t, "application/json", delivery.MIMEType)

	var payload EmailPayload
	require.NoError(t, json.Unmarshal([]byte(delivery.Content), &payload))
	assert.Equal(t, "home organization", payload.Subject)
}

func TestRenderEmail_TargetMismatch(t *testing.T) {
	brand := adapterBrand()
	req := adapterRequest(types.ChannelEmail, types.DestinationLinkedIn)
	artifact := renderReady(t, brand, req)

	_, err := RenderEmail(brand, req, artifact)
	require.Error(t, err)

	var mismatch *TargetMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "destination", mismatch.Field)
	assert.Equal(t, "email_list", mismatch.Expected)
}

func TestRenderLinkedInText(t *testing.T) {
	brand := adapterBrand()
	req := adapterRequest(types.ChannelSocialLongform, types.DestinationLinkedIn)
	artifact := renderReady(t, brand, req)

	text, err := RenderLinkedInText(req, artifact)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(text, "home organization\n\n"))
	assert.Contains(t, text, "Introduction")
	assert.Contains(t, text, "The Core Idea")
	assert.True(t, strings.HasSuffix(text, "\n"))
	assert.NotContains(t, text, "##")
}

func TestRenderLinkedIn_Delivery(t *testing.T) {
	brand := adapterBrand()
	req := adapterRequest(types.ChannelSocialLongform, types.DestinationLinkedIn)
	artifact := renderReady(t, brand, req)

	delivery, err := RenderLinkedIn(req, artifact)
	require.NoError(t, err)
	assert.Equal(t, "run-1.linkedin.txt", delivery.Filename)
	assert.Equal(t, "text/plain", delivery.MIMEType)
}

func TestRenderForRequest_Dispatch(t *testing.T) {
	brand := adapterBrand()

	req := adapterRequest(types.ChannelBlogArticle, types.DestinationClientWebsite)
	delivery, err := RenderForRequest(brand, req, renderReady(t, brand, req))
	require.NoError(t, err)
	assert.Equal(t, "text/markdown", delivery.MIMEType)

	req = adapterRequest(types.ChannelEmail, types.DestinationEmailList)
	delivery, err = RenderForRequest(brand, req, renderReady(t, brand, req))
	require.NoError(t, err)
	assert.Equal(t, "application/json", delivery.MIMEType)

	req = adapterRequest(types.ChannelSocialLongform, types.DestinationLinkedIn)
	delivery, err = RenderForRequest(brand, req, renderReady(t, brand, req))
	require.NoError(t, err)
	assert.Equal(t, "text/plain", delivery.MIMEType)

	req = adapterRequest(types.ChannelVideoScript, types.DestinationTikTok)
	_, err = RenderForRequest(brand, req, renderReady(t, brand, req))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no adapter implemented for delivery channel "video_script"`)
}

func TestWriteDelivery(t *testing.T) {
	baseDir := t.TempDir()
	delivery := &RenderedDelivery{
		Filename: "run-1.md",
		MIMEType: "text/markdown",
		Content:  "hello\n",
	}

	path, err := WriteDelivery(baseDir, delivery)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(baseDir, OutputsRelDir, "run-1.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestWriteDelivery_RejectsPathSeparators(t *testing.T) {
	_, err := WriteDelivery(t.TempDir(), &RenderedDelivery{
		Filename: filepath.Join("..", "escape.md"),
		Content:  "nope",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not contain path separators")
}

func TestBlocksToPlainText(t *testing.T) {
	blocks := []types.Block{
		{Type: types.BlockParagraph, Text: "First paragraph."},
		{Type: types.BlockBullets, Items: []string{"one", "two"}},
		{Type: types.BlockNumbered, Items: []string{"alpha", "", "beta"}},
		{Type: types.BlockDivider},
		{Type: types.BlockQuote, Text: "quoted"},
	}

	got := blocksToPlainText(blocks)
	assert.Equal(t,
		"First paragraph.\n- one\n- two\n1. alpha\n2. beta\n---\nquoted",
		got)
}

func TestHeadingFromID(t *testing.T) {
	assert.Equal(t, "How Chosen", headingFromID("how_chosen"))
	assert.Equal(t, "Intro", headingFromID("intro"))
}
