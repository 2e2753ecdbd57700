package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/content-factory/internal/types"
)

func compileBrand() *types.BrandProfile {
	return &types.BrandProfile{
		BrandID:        "acme-living",
		BrandArchetype: types.ArchetypeTrustedGuide,
		BrandSources: types.BrandSources{
			Sources: []types.BrandSource{
				{SourceID: "src-home", Kind: types.SourceKindURL, Purpose: types.PurposeHomepage, Ref: "https://acme.example.com"},
			},
		},
		DomainsSupported: []types.Domain{types.DomainHome},
		DomainPrimary:    types.DomainHome,
		Audience: types.Audience{
			PrimaryAudience:        types.AudienceGeneralConsumers,
			AudienceSophistication: types.SophisticationMedium,
		},
		ContentStrategy: types.ContentStrategy{
			AllowedIntents:      []types.ContentIntent{types.IntentThoughtLeadership, types.IntentProductRecommendation},
			DefaultContentDepth: types.DepthShort,
		},
		TopicPolicy: types.TopicPolicy{
			Allowlist: []string{"home organization", "kitchen essentials"},
		},
		PersonaByDomain: map[types.Domain]types.PersonaConfig{
			types.DomainHome: {
				PrimaryPersona:      types.PersonaPracticalExpert,
				PersonaModifiers:    []types.PersonaModifier{types.ModifierNone},
				ScienceExplicitness: types.ScienceImplied,
				PersonalPresence:    types.PresenceNone,
				NarrationMode:       types.NarrationThirdPersonOnly,
			},
		},
		CommercialPolicy: types.CommercialPolicy{
			CommercialPosture: types.PostureInvisible,
			CTAPolicy:         types.CTANone,
		},
		DisclaimerPolicy: types.DisclaimerPolicy{
			Required:       true,
			DisclaimerText: "This content is for informational purposes only.",
			Locations:      []types.DisclaimerLocation{types.DisclaimerFooter},
		},
		DeliveryPolicy: types.DeliveryPolicy{
			DeliveryChannels:     []types.DeliveryChannel{types.ChannelBlogArticle},
			DeliveryDestinations: []types.DeliveryDestination{types.DestinationClientWebsite},
			DeliveryStrategy:     types.StrategySingleCanonical,
		},
		Cadence: types.Cadence{
			PublicationCadence: types.CadenceOnDemand,
			TimeZone:           types.TimezoneUTC,
		},
	}
}

func thoughtRequest() *types.ContentRequest {
	return &types.ContentRequest{
		BrandID: "acme-living",
		Publish: types.Publish{PublishDate: "2099-01-15"},
		Intent:  types.IntentThoughtLeadership,
		Form:    types.FormCoreInsightEssay,
		Domain:  types.DomainHome,
		Topic:   types.Topic{Mode: types.TopicModeManual, Value: "home organization"},
		DeliveryTarget: types.DeliveryTarget{
			Destination: types.DestinationClientWebsite,
			Channel:     types.ChannelBlogArticle,
		},
		Products: types.Products{Mode: types.ProductsModeNone},
	}
}

func productRequest() *types.ContentRequest {
	req := thoughtRequest()
	req.Intent = types.IntentProductRecommendation
	req.Form = types.FormTopXList
	req.Products = types.Products{
		Mode: types.ProductsModeManualList,
		Items: []types.ProductItem{
			{PickID: "pick-1", Title: "Shelf Organizer", URL: "https://shop.example.com/shelf", Rating: 4.5},
			{PickID: "pick-2", Title: "Drawer Dividers", URL: "https://shop.example.com/dividers"},
		},
	}
	return req
}

func testContext() *types.BrandContextArtifact {
	return &types.BrandContextArtifact{
		ArtifactVersion: "1.0",
		BrandID:         "acme-living",
	}
}

func sectionIDs(artifact *types.ContentArtifact) []string {
	ids := make([]string, 0, len(artifact.Sections))
	for _, s := range artifact.Sections {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestCompile_ThoughtLeadershipSections(t *testing.T) {
	artifact := Compile(compileBrand(), thoughtRequest(), testContext(), "run-1")

	assert.Equal(t, []string{SectionIntro, SectionCoreIdea, SectionClosing}, sectionIDs(artifact))
	assert.Equal(t, "Introduction", artifact.Sections[0].Heading)
	assert.Equal(t, "The Core Idea", artifact.Sections[1].Heading)
	assert.Equal(t, "Closing Thoughts", artifact.Sections[2].Heading)
}

func TestCompile_ProductRecommendationSections(t *testing.T) {
	artifact := Compile(compileBrand(), productRequest(), testContext(), "run-1")

	assert.Equal(t,
		[]string{SectionIntro, SectionHowChosen, SectionPicks, SectionClosing},
		sectionIDs(artifact))
}

func TestCompile_TopicParagraphIsFirstIntroParagraph(t *testing.T) {
	artifact := Compile(compileBrand(), thoughtRequest(), testContext(), "run-1")

	intro := artifact.FindSection(SectionIntro)
	require.NotNil(t, intro)
	require.NotEmpty(t, intro.Blocks)
	assert.Equal(t, types.BlockParagraph, intro.Blocks[0].Type)
	assert.Equal(t, "Topic: home organization", intro.Blocks[0].Text)
}

func TestCompile_AutoTopicFallsBackToFirstAllowlistEntry(t *testing.T) {
	req := thoughtRequest()
	req.Topic = types.Topic{Mode: types.TopicModeAuto}

	artifact := Compile(compileBrand(), req, testContext(), "run-1")
	assert.Equal(t, "home organization", ExtractTopic(artifact))
}

func TestCompile_ProductsPresentOnlyForProductForms(t *testing.T) {
	artifact := Compile(compileBrand(), thoughtRequest(), testContext(), "run-1")
	assert.Nil(t, artifact.Products)

	artifact = Compile(compileBrand(), productRequest(), testContext(), "run-1")
	require.Len(t, artifact.Products, 2)
	assert.Equal(t, "pick-1", artifact.Products[0].PickID)
	assert.Equal(t, "Shelf Organizer", artifact.Products[0].Title)
	assert.NotEmpty(t, artifact.Rationale.SelectionCriteria)
}

func TestCompile_FooterDisclaimerIsLastBlock(t *testing.T) {
	artifact := Compile(compileBrand(), thoughtRequest(), testContext(), "run-1")

	last := artifact.Sections[len(artifact.Sections)-1]
	require.NotEmpty(t, last.Blocks)
	block := last.Blocks[len(last.Blocks)-1]
	assert.True(t, IsDisclaimerBlock(block))
	assert.Equal(t, "This content is for informational purposes only.", block.Text)
}

func TestCompile_HeaderAndBeforeProductsDisclaimers(t *testing.T) {
	brand := compileBrand()
	brand.DisclaimerPolicy.Locations = []types.DisclaimerLocation{
		types.DisclaimerHeader, types.DisclaimerBeforeProducts,
	}

	artifact := Compile(brand, productRequest(), testContext(), "run-1")

	first := artifact.Sections[0]
	assert.True(t, IsDisclaimerBlock(first.Blocks[0]))

	picks := artifact.FindSection(SectionPicks)
	require.NotNil(t, picks)
	assert.True(t, IsDisclaimerBlock(picks.Blocks[0]))
}

func TestCompile_BeforeProductsIgnoredWithoutPicksSection(t *testing.T) {
	brand := compileBrand()
	brand.DisclaimerPolicy.Locations = []types.DisclaimerLocation{types.DisclaimerBeforeProducts}

	artifact := Compile(brand, thoughtRequest(), testContext(), "run-1")
	for _, sec := range artifact.Sections {
		for _, b := range sec.Blocks {
			assert.False(t, IsDisclaimerBlock(b))
		}
	}
}

func TestCompile_ChecksReflectUpstreamOutcomes(t *testing.T) {
	artifact := Compile(compileBrand(), thoughtRequest(), testContext(), "run-1")

	assert.True(t, artifact.Checks.MatrixValidationPassed)
	assert.True(t, artifact.Checks.BrandPolicyChecksPassed)
	assert.True(t, artifact.Checks.RequiredSectionsPresent)
	assert.True(t, artifact.Checks.RobotsPolicyPassed)
	assert.False(t, artifact.Checks.CitationsPresentWhenRequired)
	assert.NotNil(t, artifact.Checks.DisallowedClaimsFound)
	assert.Empty(t, artifact.Checks.DisallowedClaimsFound)

	artifact = Compile(compileBrand(), thoughtRequest(), nil, "run-1")
	assert.False(t, artifact.Checks.RobotsPolicyPassed)
}

func TestCompile_IdentityAndPolicyFieldsCopied(t *testing.T) {
	artifact := Compile(compileBrand(), thoughtRequest(), testContext(), "run-42")

	assert.Equal(t, ArtifactVersion, artifact.ArtifactVersion)
	assert.Equal(t, "acme-living", artifact.BrandID)
	assert.Equal(t, "run-42", artifact.RunID)
	assert.NotEmpty(t, artifact.GeneratedAt)
	assert.Equal(t, "thought_leadership", artifact.Intent)
	assert.Equal(t, "core_insight_essay", artifact.Form)
	assert.Equal(t, "home", artifact.Domain)
	assert.Equal(t, "short", artifact.ContentDepth)
	assert.Equal(t, "practical_expert", artifact.Persona.PrimaryPersona)
	assert.Equal(t, "general_consumers", artifact.Audience.PrimaryAudience)

	require.Len(t, artifact.Claims, 1)
	assert.Equal(t, types.ClaimInference, artifact.Claims[0].ClaimType)

	require.Len(t, artifact.Sources, 1)
	assert.Equal(t, "src-home", artifact.Sources[0].SourceID)
}

func TestExtractTopic(t *testing.T) {
	artifact := Compile(compileBrand(), thoughtRequest(), testContext(), "run-1")
	assert.Equal(t, "home organization", ExtractTopic(artifact))

	empty := &types.ContentArtifact{Sections: []types.Section{{ID: SectionIntro}}}
	assert.Equal(t, "", ExtractTopic(empty))
}

func TestIsDisclaimerBlock(t *testing.T) {
	disclaimer := types.Block{
		Type: types.BlockCallout,
		Text: "note",
		Meta: map[string]any{MetaRole: MetaRoleDisclaimer},
	}
	assert.True(t, IsDisclaimerBlock(disclaimer))

	assert.False(t, IsDisclaimerBlock(types.Block{Type: types.BlockCallout, Text: "plain callout"}))
	assert.False(t, IsDisclaimerBlock(types.Block{
		Type: types.BlockParagraph,
		Meta: map[string]any{MetaRole: MetaRoleDisclaimer},
	}))
}
