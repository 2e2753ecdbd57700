package policy

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/content-factory/internal/types"
)

const brandYAML = `
brand_id: acme-living
brand_archetype: trusted_guide
brand_sources:
  require_at_least_one_of_purposes: [homepage]
  sources:
    - source_id: src-home
      kind: url
      purpose: homepage
      ref: https://acme.example.com
domains_supported: [home]
domain_primary: home
audience:
  primary_audience: general_consumers
  audience_sophistication: medium
content_strategy:
  allowed_intents: [thought_leadership]
  allowed_product_recommendation_forms: []
  allowed_thought_leadership_forms: [core_insight_essay]
  default_content_depth: short
topic_policy:
  allowlist: ["home organization"]
persona_by_domain:
  home:
    primary_persona: practical_expert
    persona_modifiers: [none]
    science_explicitness: implied
    personal_presence: none
    narration_mode: third_person_only
commercial_policy:
  commercial_posture: invisible
  cta_policy: none
  prohibited_behaviors: [fake_scarcity]
disclaimer_policy:
  required: true
  disclaimer_text: "This content is for informational purposes only."
  locations: [footer]
delivery_policy:
  delivery_channels: [blog_article]
  delivery_destinations: [client_website]
  delivery_strategy: single_canonical
  auto_publish: false
cadence:
  publication_cadence: on_demand
  preferred_publish_days: []
  time_zone: UTC
`

const requestYAML = `
brand_id: acme-living
publish:
  publish_date: "2099-01-15"
intent: thought_leadership
form: core_insight_essay
domain: home
topic:
  mode: manual
  value: home organization
delivery_target:
  destination: client_website
  channel: blog_article
products:
  mode: none
  items: []
`

func writeTempDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBrandProfile_ValidDocument(t *testing.T) {
	brand, err := LoadBrandProfile(writeTempDoc(t, "brand.yaml", brandYAML))
	require.NoError(t, err)

	assert.Equal(t, "acme-living", brand.BrandID)
	assert.Equal(t, types.ArchetypeTrustedGuide, brand.BrandArchetype)
	assert.Equal(t, types.DomainHome, brand.DomainPrimary)
	assert.True(t, brand.DisclaimerRequiredAt(types.DisclaimerFooter))
}

func TestLoadBrandProfile_UnknownFieldRejected(t *testing.T) {
	doc := brandYAML + "\nsurprise_field: true\n"

	_, err := LoadBrandProfile(writeTempDoc(t, "brand.yaml", doc))
	require.Error(t, err)

	var schemaErr *types.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, err.Error(), "failed to parse brand profile")
}

func TestLoadBrandProfile_UnknownEnumValueRejected(t *testing.T) {
	doc := strings.Replace(brandYAML, "brand_archetype: trusted_guide", "brand_archetype: hype_machine", 1)

	_, err := LoadBrandProfile(writeTempDoc(t, "brand.yaml", doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hype_machine")
}

func TestLoadBrandProfile_MissingFile(t *testing.T) {
	_, err := LoadBrandProfile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read brand profile")
}

func TestLoadContentRequest_ValidDocument(t *testing.T) {
	req, err := LoadContentRequest(writeTempDoc(t, "request.yaml", requestYAML))
	require.NoError(t, err)

	assert.Equal(t, "acme-living", req.BrandID)
	assert.Equal(t, types.IntentThoughtLeadership, req.Intent)
	assert.Equal(t, "home organization", req.Topic.Value)
	assert.False(t, req.IsProductForm())
}

func TestLoadContentRequest_UnknownFieldRejected(t *testing.T) {
	doc := requestYAML + "\nextra: 1\n"

	_, err := LoadContentRequest(writeTempDoc(t, "request.yaml", doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse content request")
}

func TestLoadContentRequest_StructuralValidationApplied(t *testing.T) {
	doc := strings.Replace(requestYAML, "value: home organization", `value: ""`, 1)

	_, err := LoadContentRequest(writeTempDoc(t, "request.yaml", doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "topic.value is required when topic.mode=manual")
}
