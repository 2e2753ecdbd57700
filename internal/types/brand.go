// Package types provides type definitions for structured data used throughout the content-factory system.
package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BrandSource declares one signal source the context builder may fetch.
type BrandSource struct {
	SourceID string             `yaml:"source_id" json:"source_id" validate:"required"`
	Kind     BrandSourceKind    `yaml:"kind" json:"kind" validate:"required"`
	Purpose  BrandSourcePurpose `yaml:"purpose" json:"purpose" validate:"required"`
	Ref      string             `yaml:"ref" json:"ref" validate:"required"`
	Notes    string             `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// BrandSources is the declared source list plus its adequacy rule.
type BrandSources struct {
	RequireAtLeastOneOfPurposes []BrandSourcePurpose `yaml:"require_at_least_one_of_purposes" json:"require_at_least_one_of_purposes"`
	Sources                     []BrandSource        `yaml:"sources" json:"sources" validate:"required,min=1,dive"`
}

// Audience describes who the brand writes for.
type Audience struct {
	PrimaryAudience        PrimaryAudience        `yaml:"primary_audience" json:"primary_audience" validate:"required"`
	AudienceSophistication AudienceSophistication `yaml:"audience_sophistication" json:"audience_sophistication" validate:"required"`
	AudienceContext        string                 `yaml:"audience_context,omitempty" json:"audience_context,omitempty"`
}

// ContentStrategy lists what kinds of content the brand permits.
type ContentStrategy struct {
	AllowedIntents                     []ContentIntent `yaml:"allowed_intents" json:"allowed_intents" validate:"required,min=1"`
	AllowedProductRecommendationForms  []Form          `yaml:"allowed_product_recommendation_forms" json:"allowed_product_recommendation_forms"`
	AllowedThoughtLeadershipForms      []Form          `yaml:"allowed_thought_leadership_forms" json:"allowed_thought_leadership_forms"`
	DefaultContentDepth                ContentDepth    `yaml:"default_content_depth" json:"default_content_depth" validate:"required"`
}

// TopicPolicy is the brand's closed set of permitted topics.
type TopicPolicy struct {
	Allowlist []string `yaml:"allowlist" json:"allowlist" validate:"required,min=1"`
}

// PersonaConfig is the voice configuration for one domain.
type PersonaConfig struct {
	PrimaryPersona      Persona             `yaml:"primary_persona" json:"primary_persona" validate:"required"`
	PersonaModifiers    []PersonaModifier   `yaml:"persona_modifiers" json:"persona_modifiers"`
	ScienceExplicitness ScienceExplicitness `yaml:"science_explicitness" json:"science_explicitness" validate:"required"`
	PersonalPresence    PersonalPresence    `yaml:"personal_presence" json:"personal_presence" validate:"required"`
	NarrationMode       NarrationMode       `yaml:"narration_mode" json:"narration_mode" validate:"required"`
}

// CommercialPolicy bounds how commercial the brand may be.
type CommercialPolicy struct {
	CommercialPosture   CommercialPosture    `yaml:"commercial_posture" json:"commercial_posture" validate:"required"`
	CTAPolicy           CTAPolicy            `yaml:"cta_policy" json:"cta_policy" validate:"required"`
	ProhibitedBehaviors []ProhibitedBehavior `yaml:"prohibited_behaviors" json:"prohibited_behaviors"`
}

// DisclaimerPolicy declares whether and where disclaimers are required.
type DisclaimerPolicy struct {
	Required       bool                 `yaml:"required" json:"required"`
	DisclaimerText string               `yaml:"disclaimer_text,omitempty" json:"disclaimer_text,omitempty"`
	Locations      []DisclaimerLocation `yaml:"locations" json:"locations"`
}

// DeliveryPolicy bounds where the brand's content may ship.
type DeliveryPolicy struct {
	DeliveryChannels     []DeliveryChannel     `yaml:"delivery_channels" json:"delivery_channels" validate:"required,min=1"`
	DeliveryDestinations []DeliveryDestination `yaml:"delivery_destinations" json:"delivery_destinations" validate:"required,min=1"`
	DeliveryStrategy     DeliveryStrategy      `yaml:"delivery_strategy" json:"delivery_strategy" validate:"required"`
	AutoPublish          bool                  `yaml:"auto_publish" json:"auto_publish"`
}

// Cadence declares how often the brand publishes.
type Cadence struct {
	PublicationCadence   PublicationCadence `yaml:"publication_cadence" json:"publication_cadence" validate:"required"`
	PreferredPublishDays []Weekday          `yaml:"preferred_publish_days" json:"preferred_publish_days"`
	TimeZone             Timezone           `yaml:"time_zone" json:"time_zone" validate:"required"`
}

// BrandProfile is the declarative per-brand editorial policy document.
// It is validated once at load time and immutable for the rest of the run.
type BrandProfile struct {
	BrandID        string         `yaml:"brand_id" json:"brand_id" validate:"required"`
	BrandArchetype BrandArchetype `yaml:"brand_archetype" json:"brand_archetype" validate:"required"`

	BrandSources BrandSources `yaml:"brand_sources" json:"brand_sources" validate:"required"`

	DomainsSupported []Domain `yaml:"domains_supported" json:"domains_supported" validate:"required,min=1"`
	DomainPrimary    Domain   `yaml:"domain_primary" json:"domain_primary" validate:"required"`

	Audience Audience `yaml:"audience" json:"audience" validate:"required"`

	ContentStrategy ContentStrategy `yaml:"content_strategy" json:"content_strategy" validate:"required"`
	TopicPolicy     TopicPolicy     `yaml:"topic_policy" json:"topic_policy" validate:"required"`

	PersonaByDomain map[Domain]PersonaConfig `yaml:"persona_by_domain" json:"persona_by_domain" validate:"required,min=1"`

	CommercialPolicy CommercialPolicy `yaml:"commercial_policy" json:"commercial_policy" validate:"required"`
	DisclaimerPolicy DisclaimerPolicy `yaml:"disclaimer_policy" json:"disclaimer_policy"`
	DeliveryPolicy   DeliveryPolicy   `yaml:"delivery_policy" json:"delivery_policy" validate:"required"`
	Cadence          Cadence          `yaml:"cadence" json:"cadence" validate:"required"`
}

// Validate checks the profile's structural invariants. It fails fast with a
// single SchemaError: brand documents are fixed once at load time, so the
// first structural defect is enough to reject the document.
func (b *BrandProfile) Validate() error {
	if err := validator.New().Struct(b); err != nil {
		return &SchemaError{Message: "brand profile failed structural validation", Cause: err}
	}

	// Source adequacy: at least one source must carry a required purpose.
	if len(b.BrandSources.RequireAtLeastOneOfPurposes) > 0 {
		present := make(map[BrandSourcePurpose]bool, len(b.BrandSources.Sources))
		for _, s := range b.BrandSources.Sources {
			present[s.Purpose] = true
		}
		found := false
		for _, p := range b.BrandSources.RequireAtLeastOneOfPurposes {
			if present[p] {
				found = true
				break
			}
		}
		if !found {
			return &SchemaError{Message: fmt.Sprintf(
				"brand_sources must include at least one source with purpose in %v",
				b.BrandSources.RequireAtLeastOneOfPurposes,
			)}
		}
	}

	if !b.SupportsDomain(b.DomainPrimary) {
		return &SchemaError{Message: "domain_primary must be included in domains_supported"}
	}

	var missing []string
	for _, d := range b.DomainsSupported {
		if _, ok := b.PersonaByDomain[d]; !ok {
			missing = append(missing, string(d))
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Message: fmt.Sprintf(
			"persona_by_domain must include configs for all domains_supported; missing=%s",
			strings.Join(missing, ", "),
		)}
	}

	cleaned := make([]string, 0, len(b.TopicPolicy.Allowlist))
	seen := make(map[string]bool, len(b.TopicPolicy.Allowlist))
	for _, t := range b.TopicPolicy.Allowlist {
		t = strings.TrimSpace(t)
		if t == "" {
			return &SchemaError{Message: "topic_policy.allowlist must not contain empty strings"}
		}
		if seen[t] {
			return &SchemaError{Message: "topic_policy.allowlist must not contain duplicates"}
		}
		seen[t] = true
		cleaned = append(cleaned, t)
	}
	b.TopicPolicy.Allowlist = cleaned

	if b.DisclaimerPolicy.Required {
		if strings.TrimSpace(b.DisclaimerPolicy.DisclaimerText) == "" {
			return &SchemaError{Message: "disclaimer_policy.disclaimer_text is required when required=true"}
		}
		if len(b.DisclaimerPolicy.Locations) == 0 {
			return &SchemaError{Message: "disclaimer_policy.locations must not be empty when required=true"}
		}
	}

	if b.Cadence.PublicationCadence == CadenceCustom && len(b.Cadence.PreferredPublishDays) == 0 {
		return &SchemaError{Message: "cadence.preferred_publish_days is required when publication_cadence=custom"}
	}

	return nil
}

// SupportsDomain reports whether the brand supports the given domain.
func (b *BrandProfile) SupportsDomain(d Domain) bool {
	for _, s := range b.DomainsSupported {
		if s == d {
			return true
		}
	}
	return false
}

// DisclaimerRequiredAt reports whether the brand requires a disclaimer at the
// given location.
func (b *BrandProfile) DisclaimerRequiredAt(loc DisclaimerLocation) bool {
	if !b.DisclaimerPolicy.Required {
		return false
	}
	for _, l := range b.DisclaimerPolicy.Locations {
		if l == loc {
			return true
		}
	}
	return false
}
