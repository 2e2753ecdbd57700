package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/content-factory/internal/compiler"
	"github.com/jonathan/content-factory/internal/generation"
	"github.com/jonathan/content-factory/internal/types"
)

func qaBrand() *types.BrandProfile {
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

func qaThoughtRequest() *types.ContentRequest {
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

func qaProductRequest() *types.ContentRequest {
	req := qaThoughtRequest()
	req.Intent = types.IntentProductRecommendation
	req.Form = types.FormTopXList
	req.Products = types.Products{
		Mode: types.ProductsModeManualList,
		Items: []types.ProductItem{
			{PickID: "pick-1", Title: "Shelf Organizer", URL: "https://shop.example.com/shelf"},
		},
	}
	return req
}

func filledArtifact(t *testing.T, brand *types.BrandProfile, req *types.ContentRequest) *types.ContentArtifact {
	t.Helper()
	artifact := compiler.Compile(brand, req, nil, "run-1")
	_, err := generation.Fill(brand, req, artifact)
	require.NoError(t, err)
	return artifact
}

func TestValidateArtifact_FilledArtifactPasses(t *testing.T) {
	brand := qaBrand()
	req := qaThoughtRequest()
	assert.NoError(t, ValidateArtifact(brand, req, filledArtifact(t, brand, req)))

	brand = qaBrand()
	req = qaProductRequest()
	assert.NoError(t, ValidateArtifact(brand, req, filledArtifact(t, brand, req)))
}

func TestValidateArtifact_IdentityMismatchesCollected(t *testing.T) {
	brand := qaBrand()
	req := qaThoughtRequest()
	artifact := filledArtifact(t, brand, req)
	artifact.BrandID = "someone-else"
	artifact.Intent = "product_recommendation"
	artifact.Domain = "pets"

	err := ValidateArtifact(brand, req, artifact)
	require.Error(t, err)

	var contractErr *ArtifactContractError
	require.ErrorAs(t, err, &contractErr)
	assert.Len(t, contractErr.Problems, 3)
	assert.Contains(t, err.Error(), "artifact validation failed:")
	assert.Contains(t, err.Error(), "brand_id must match")
}

func TestValidateArtifact_ProductPresenceRules(t *testing.T) {
	brand := qaBrand()

	// Product form without products.
	req := qaProductRequest()
	artifact := filledArtifact(t, brand, req)
	artifact.Products = nil
	err := ValidateArtifact(brand, req, artifact)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "products must be present for product forms")

	// Non-product form with a products slot, even an empty one.
	req = qaThoughtRequest()
	artifact = filledArtifact(t, brand, req)
	artifact.Products = []types.Product{}
	err = ValidateArtifact(brand, req, artifact)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "products must be null for non-product forms")
}

func TestValidateArtifact_DisclaimerMustMatchExactly(t *testing.T) {
	brand := qaBrand()
	req := qaThoughtRequest()
	artifact := filledArtifact(t, brand, req)

	// Paraphrasing the disclaimer does not satisfy the policy.
	for i := range artifact.Sections {
		for j := range artifact.Sections[i].Blocks {
			if artifact.Sections[i].Blocks[j].Type == types.BlockCallout {
				artifact.Sections[i].Blocks[j].Text = "Content here is informational."
			}
		}
	}

	err := ValidateArtifact(brand, req, artifact)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required disclaimer block not found")
}

func TestValidateArtifact_NoDisclaimerCheckWhenNotRequired(t *testing.T) {
	brand := qaBrand()
	brand.DisclaimerPolicy = types.DisclaimerPolicy{Required: false}
	req := qaThoughtRequest()

	assert.NoError(t, ValidateArtifact(brand, req, filledArtifact(t, brand, req)))
}
