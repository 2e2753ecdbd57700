// Package types provides type definitions for structured data used throughout the content-factory system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Closed-set policy dimensions. Every dimension is a string type with an
// explicit value list; unknown values are rejected when the document is
// parsed, not when the value is used.

// BrandArchetype identifies the editorial archetype of a brand.
type BrandArchetype string

// BrandArchetype values
const (
	ArchetypeTrustedGuide           BrandArchetype = "trusted_guide"
	ArchetypeExpertReviewer         BrandArchetype = "expert_reviewer"
	ArchetypeEnthusiasticEnthusiast BrandArchetype = "enthusiastic_enthusiast"
	ArchetypeLifestyleCurator       BrandArchetype = "lifestyle_curator"
)

// ContentIntent identifies the editorial intent of a piece of content.
type ContentIntent string

// ContentIntent values
const (
	IntentProductRecommendation ContentIntent = "product_recommendation"
	IntentProductEducation      ContentIntent = "product_education"
	IntentThoughtLeadership     ContentIntent = "thought_leadership"
	IntentOpinionPOV            ContentIntent = "opinion_pov"
	IntentDigestCuration        ContentIntent = "digest_curation"
)

// Form is the structural shape of a piece. The value space is the union of
// two mutually exclusive closed sets: product-recommendation forms and
// thought-leadership forms.
type Form string

// Product-recommendation forms
const (
	FormTopXList           Form = "top_x_list"
	FormInDepthReview      Form = "in_depth_single_review"
	FormComparisonTable    Form = "comparison_table"
	FormBuyerGuide         Form = "buyer_guide"
	FormAlternativesRoundup Form = "alternatives_roundup"
)

// Thought-leadership forms
const (
	FormCoreInsightEssay       Form = "core_insight_essay"
	FormFrameworkBreakdown     Form = "framework_breakdown"
	FormContrarianTake         Form = "contrarian_take"
	FormMythsVsReality         Form = "myths_vs_reality"
	FormNarrativeWithLesson    Form = "narrative_with_lesson"
	FormMicroCaseStudy         Form = "micro_case_study"
	FormQuestionLedExploration Form = "question_led_exploration"
)

// Domain identifies a subject vertical a brand can publish in.
type Domain string

// Domain values
const (
	DomainLeadership Domain = "leadership"
	DomainFinance    Domain = "finance"
	DomainHealth     Domain = "health"
	DomainPets       Domain = "pets"
	DomainHome       Domain = "home"
	DomainKitchen    Domain = "kitchen"
	DomainTech       Domain = "tech"
)

// BrandSourceKind distinguishes networked vs. local brand signal sources.
type BrandSourceKind string

// BrandSourceKind values
const (
	SourceKindURL  BrandSourceKind = "url"
	SourceKindFile BrandSourceKind = "file"
)

// BrandSourcePurpose tags what a brand source is expected to describe.
type BrandSourcePurpose string

// BrandSourcePurpose values
const (
	PurposeHomepage        BrandSourcePurpose = "homepage"
	PurposeLinkedInProfile BrandSourcePurpose = "linkedin_profile"
	PurposeAboutPage       BrandSourcePurpose = "about_page"
	PurposeServicesPage    BrandSourcePurpose = "services_page"
	PurposeProductPages    BrandSourcePurpose = "product_pages"
	PurposePolicies        BrandSourcePurpose = "policies"
	PurposeLongformContent BrandSourcePurpose = "longform_content"
	PurposeOther           BrandSourcePurpose = "other"
)

// TopicMode selects manual vs. automatic topic resolution.
type TopicMode string

// TopicMode values
const (
	TopicModeManual TopicMode = "manual"
	TopicModeAuto   TopicMode = "auto"
)

// DisclaimerLocation is a structural position a disclaimer block may be
// required at.
type DisclaimerLocation string

// DisclaimerLocation values
const (
	DisclaimerHeader         DisclaimerLocation = "header"
	DisclaimerFooter         DisclaimerLocation = "footer"
	DisclaimerBeforeProducts DisclaimerLocation = "before_products"
)

// Persona is a brand voice configuration.
type Persona string

// Persona values
const (
	PersonaPracticalExpert       Persona = "practical_expert"
	PersonaWarmReflective        Persona = "warm_reflective"
	PersonaQuirkyFun             Persona = "quirky_fun"
	PersonaMinimalistDirect      Persona = "minimalist_direct"
	PersonaDeeplyTechnical       Persona = "deeply_technical"
	PersonaCalmAuthoritative     Persona = "calm_authoritative"
	PersonaDirectInsightDense    Persona = "direct_insight_dense"
	PersonaProvocativeChallenger Persona = "provocative_challenger"
	PersonaMinimalistExecutive   Persona = "minimalist_executive"
)

// PersonaModifier adjusts a persona's delivery.
type PersonaModifier string

// PersonaModifier values
const (
	ModifierScienceLedExplainer PersonaModifier = "science_led_explainer"
	ModifierReassuring          PersonaModifier = "reassuring"
	ModifierSlightlyPlayful     PersonaModifier = "slightly_playful"
	ModifierNone                PersonaModifier = "none"
)

// ScienceExplicitness controls how explicitly evidence is cited in voice.
type ScienceExplicitness string

// ScienceExplicitness values
const (
	ScienceImplied             ScienceExplicitness = "implied"
	ScienceWhenCredibilityHelps ScienceExplicitness = "explicit_when_credibility_helpful"
	ScienceExplicitOften       ScienceExplicitness = "explicit_often"
)

// PersonalPresence controls how much first-person anecdote is allowed.
type PersonalPresence string

// PersonalPresence values
const (
	PresenceNone               PersonalPresence = "none"
	PresenceOccasionalAnecdote PersonalPresence = "occasional_personal_anecdotes"
	PresenceFrequentAnecdote   PersonalPresence = "frequent_personal_anecdotes"
)

// NarrationMode controls grammatical person.
type NarrationMode string

// NarrationMode values
const (
	NarrationThirdPersonOnly      NarrationMode = "third_person_only"
	NarrationFirstPersonAllowed   NarrationMode = "first_person_allowed"
	NarrationFirstPersonPreferred NarrationMode = "first_person_preferred"
)

// PrimaryAudience identifies the main readership of a brand.
type PrimaryAudience string

// PrimaryAudience values
const (
	AudienceSeniorExecutives     PrimaryAudience = "senior_executives_c_suite"
	AudienceMidLevelLeaders      PrimaryAudience = "mid_level_leaders"
	AudienceFounders             PrimaryAudience = "founders_entrepreneurs"
	AudienceSalesLeaders         PrimaryAudience = "sales_leaders"
	AudienceProfessionalSpeakers PrimaryAudience = "professional_speakers"
	AudienceCoachesConsultants   PrimaryAudience = "coaches_consultants"
	AudienceGeneralConsumers     PrimaryAudience = "general_consumers"
	AudienceEnthusiasts          PrimaryAudience = "enthusiasts_hobbyists"
)

// AudienceSophistication grades how much prior knowledge readers bring.
type AudienceSophistication string

// AudienceSophistication values
const (
	SophisticationLow    AudienceSophistication = "low"
	SophisticationMedium AudienceSophistication = "medium"
	SophisticationHigh   AudienceSophistication = "high"
)

// CommercialPosture grades how openly commercial a brand is allowed to be.
type CommercialPosture string

// CommercialPosture values
const (
	PostureInvisible           CommercialPosture = "invisible"
	PostureSoftRecommendation  CommercialPosture = "soft_recommendation"
	PostureClearRecommendation CommercialPosture = "clear_recommendation"
	PostureExplicitCTA         CommercialPosture = "explicit_cta"
)

// CTAPolicy controls call-to-action behavior.
type CTAPolicy string

// CTAPolicy values
const (
	CTANone               CTAPolicy = "none"
	CTASoftSignatureLine  CTAPolicy = "soft_authority_signature_line"
	CTAGentleAtEnd        CTAPolicy = "gentle_cta_at_end"
	CTAClearInvitation    CTAPolicy = "clear_invitation"
)

// ProhibitedBehavior names a commercial behavior a brand forbids.
type ProhibitedBehavior string

// ProhibitedBehavior values
const (
	ProhibitFakeScarcity     ProhibitedBehavior = "fake_scarcity"
	ProhibitHypeSuperlatives ProhibitedBehavior = "hype_superlatives"
	ProhibitPressureLanguage ProhibitedBehavior = "pressure_language"
)

// ContentDepth grades target length/depth of a piece.
type ContentDepth string

// ContentDepth values
const (
	DepthMicro  ContentDepth = "micro"
	DepthShort  ContentDepth = "short"
	DepthMedium ContentDepth = "medium"
	DepthLong   ContentDepth = "long"
)

// DeliveryChannel identifies the output format family.
type DeliveryChannel string

// DeliveryChannel values
const (
	ChannelBlogArticle    DeliveryChannel = "blog_article"
	ChannelEmail          DeliveryChannel = "email"
	ChannelSocialLongform DeliveryChannel = "social_longform"
	ChannelSocialShortform DeliveryChannel = "social_shortform"
	ChannelVideoScript    DeliveryChannel = "video_script"
)

// DeliveryDestination identifies where a deliverable ships.
type DeliveryDestination string

// DeliveryDestination values
const (
	DestinationHostedByUs    DeliveryDestination = "hosted_by_us"
	DestinationClientWebsite DeliveryDestination = "client_website"
	DestinationLinkedIn      DeliveryDestination = "linkedin"
	DestinationEmailList     DeliveryDestination = "email_list"
	DestinationTikTok        DeliveryDestination = "tiktok"
	DestinationInternalOnly  DeliveryDestination = "internal_only"
)

// DeliveryStrategy selects the overall publication strategy.
type DeliveryStrategy string

// DeliveryStrategy values
const (
	StrategySingleCanonical      DeliveryStrategy = "single_canonical_article"
	StrategyCanonicalPlusSocial  DeliveryStrategy = "canonical_plus_short_social"
)

// PublicationCadence selects how often a brand publishes.
type PublicationCadence string

// PublicationCadence values
const (
	CadenceOnDemand       PublicationCadence = "on_demand"
	CadenceWeekly         PublicationCadence = "weekly"
	CadenceTwiceWeekly    PublicationCadence = "twice_weekly"
	CadenceEveryOtherWeek PublicationCadence = "every_other_week"
	CadenceDaily          PublicationCadence = "daily"
	CadenceCustom         PublicationCadence = "custom"
)

// Weekday names a preferred publish day.
type Weekday string

// Weekday values
const (
	WeekdayMon Weekday = "mon"
	WeekdayTue Weekday = "tue"
	WeekdayWed Weekday = "wed"
	WeekdayThu Weekday = "thu"
	WeekdayFri Weekday = "fri"
	WeekdaySat Weekday = "sat"
	WeekdaySun Weekday = "sun"
)

// Timezone is the cadence reference timezone.
type Timezone string

// Timezone values
const (
	TimezoneUTC          Timezone = "UTC"
	TimezoneEuropeLondon Timezone = "Europe_London"
)

// ProductsMode selects how a request sources its product list.
type ProductsMode string

// ProductsMode values
const (
	ProductsModeNone       ProductsMode = "none"
	ProductsModeManualList ProductsMode = "manual_list"
)

var (
	brandArchetypeValues = enumSet(
		ArchetypeTrustedGuide, ArchetypeExpertReviewer,
		ArchetypeEnthusiasticEnthusiast, ArchetypeLifestyleCurator,
	)
	contentIntentValues = enumSet(
		IntentProductRecommendation, IntentProductEducation,
		IntentThoughtLeadership, IntentOpinionPOV, IntentDigestCuration,
	)
	productFormValues = enumSet(
		FormTopXList, FormInDepthReview, FormComparisonTable,
		FormBuyerGuide, FormAlternativesRoundup,
	)
	thoughtFormValues = enumSet(
		FormCoreInsightEssay, FormFrameworkBreakdown, FormContrarianTake,
		FormMythsVsReality, FormNarrativeWithLesson, FormMicroCaseStudy,
		FormQuestionLedExploration,
	)
	domainValues = enumSet(
		DomainLeadership, DomainFinance, DomainHealth, DomainPets,
		DomainHome, DomainKitchen, DomainTech,
	)
	sourceKindValues    = enumSet(SourceKindURL, SourceKindFile)
	sourcePurposeValues = enumSet(
		PurposeHomepage, PurposeLinkedInProfile, PurposeAboutPage,
		PurposeServicesPage, PurposeProductPages, PurposePolicies,
		PurposeLongformContent, PurposeOther,
	)
	topicModeValues          = enumSet(TopicModeManual, TopicModeAuto)
	disclaimerLocationValues = enumSet(DisclaimerHeader, DisclaimerFooter, DisclaimerBeforeProducts)
	personaValues            = enumSet(
		PersonaPracticalExpert, PersonaWarmReflective, PersonaQuirkyFun,
		PersonaMinimalistDirect, PersonaDeeplyTechnical, PersonaCalmAuthoritative,
		PersonaDirectInsightDense, PersonaProvocativeChallenger, PersonaMinimalistExecutive,
	)
	personaModifierValues = enumSet(
		ModifierScienceLedExplainer, ModifierReassuring, ModifierSlightlyPlayful, ModifierNone,
	)
	scienceExplicitnessValues = enumSet(ScienceImplied, ScienceWhenCredibilityHelps, ScienceExplicitOften)
	personalPresenceValues    = enumSet(PresenceNone, PresenceOccasionalAnecdote, PresenceFrequentAnecdote)
	narrationModeValues       = enumSet(NarrationThirdPersonOnly, NarrationFirstPersonAllowed, NarrationFirstPersonPreferred)
	primaryAudienceValues     = enumSet(
		AudienceSeniorExecutives, AudienceMidLevelLeaders, AudienceFounders,
		AudienceSalesLeaders, AudienceProfessionalSpeakers, AudienceCoachesConsultants,
		AudienceGeneralConsumers, AudienceEnthusiasts,
	)
	audienceSophisticationValues = enumSet(SophisticationLow, SophisticationMedium, SophisticationHigh)
	commercialPostureValues      = enumSet(
		PostureInvisible, PostureSoftRecommendation, PostureClearRecommendation, PostureExplicitCTA,
	)
	ctaPolicyValues = enumSet(CTANone, CTASoftSignatureLine, CTAGentleAtEnd, CTAClearInvitation)
	prohibitedBehaviorValues = enumSet(
		ProhibitFakeScarcity, ProhibitHypeSuperlatives, ProhibitPressureLanguage,
	)
	contentDepthValues = enumSet(DepthMicro, DepthShort, DepthMedium, DepthLong)
	deliveryChannelValues = enumSet(
		ChannelBlogArticle, ChannelEmail, ChannelSocialLongform,
		ChannelSocialShortform, ChannelVideoScript,
	)
	deliveryDestinationValues = enumSet(
		DestinationHostedByUs, DestinationClientWebsite, DestinationLinkedIn,
		DestinationEmailList, DestinationTikTok, DestinationInternalOnly,
	)
	deliveryStrategyValues   = enumSet(StrategySingleCanonical, StrategyCanonicalPlusSocial)
	publicationCadenceValues = enumSet(
		CadenceOnDemand, CadenceWeekly, CadenceTwiceWeekly,
		CadenceEveryOtherWeek, CadenceDaily, CadenceCustom,
	)
	weekdayValues  = enumSet(WeekdayMon, WeekdayTue, WeekdayWed, WeekdayThu, WeekdayFri, WeekdaySat, WeekdaySun)
	timezoneValues = enumSet(TimezoneUTC, TimezoneEuropeLondon)
	productsModeValues = enumSet(ProductsModeNone, ProductsModeManualList)
)

func enumSet[T ~string](values ...T) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[string(v)] = true
	}
	return set
}

// decodeEnum decodes a YAML scalar and checks it against a closed value set.
func decodeEnum(value *yaml.Node, field string, allowed map[string]bool) (string, error) {
	var s string
	if err := value.Decode(&s); err != nil {
		return "", &SchemaError{Message: fmt.Sprintf("%s must be a string", field), Cause: err}
	}
	if !allowed[s] {
		keys := make([]string, 0, len(allowed))
		for k := range allowed {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return "", &SchemaError{
			Message: fmt.Sprintf("%s has unknown value %q; allowed: %s", field, s, strings.Join(keys, ", ")),
		}
	}
	return s, nil
}

// UnmarshalYAML rejects unknown archetype values at parse time.
func (v *BrandArchetype) UnmarshalYAML(value *yaml.Node) error {
	s, err := decodeEnum(value, "brand_archetype", brandArchetypeValues)
	if err != nil {
		return err
	}
	*v = BrandArchetype(s)
	return nil
}

// UnmarshalYAML rejects unknown intent values at parse time.
func (v *ContentIntent) UnmarshalYAML(value *yaml.Node) error {
	s, err := decodeEnum(value, "intent", contentIntentValues)
	if err != nil {
		return err
	}
	*v = ContentIntent(s)
	return nil
}

// UnmarshalYAML accepts any value from either form set and rejects the rest.
func (v *Form) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return &SchemaError{Message: "form must be a string", Cause: err}
	}
	if !productFormValues[s] && !thoughtFormValues[s] {
		return &SchemaError{Message: fmt.Sprintf("form has unknown value %q", s)}
	}
	*v = Form(s)
	return nil
}

// IsProduct reports whether the form belongs to the product-recommendation
// form set. This gates every downstream products-related check.
func (v Form) IsProduct() bool {
	return productFormValues[string(v)]
}

// UnmarshalYAML rejects unknown domain values at parse time.
func (v *Domain) UnmarshalYAML(value *yaml.Node) error {
	s, err := decodeEnum(value, "domain", domainValues)
	if err != nil {
		return err
	}
	*v = Domain(s)
	return nil
}

// UnmarshalYAML rejects unknown source kinds at parse time.
func (v *BrandSourceKind) UnmarshalYAML(value *yaml.Node) error {
	s, err := decodeEnum(value, "brand source kind", sourceKindValues)
	if err != nil {
		return err
	}
	*v = BrandSourceKind(s)
	return nil
}

// UnmarshalYAML rejects unknown source purposes at parse time.
func (v *BrandSourcePurpose) UnmarshalYAML(value *yaml.Node) error {
	s, err := decodeEnum(value, "brand source purpose", sourcePurposeValues)
	if err != nil {
		return err
	}
	*v = BrandSourcePurpose(s)
	return nil
}

// UnmarshalYAML rejects unknown topic modes at parse time.
func (v *TopicMode) UnmarshalYAML(value *yaml.Node) error {
	s, err := decodeEnum(value, "topic.mode", topicModeValues)
	if err != nil {
		return err
	}
	*v = TopicMode(s)
	return nil
}

// UnmarshalYAML rejects unknown disclaimer locations at parse time.
func (v *DisclaimerLocation) UnmarshalYAML(value *yaml.Node) error {
	s, err := decodeEnum(value, "disclaimer location", disclaimerLocationValues)
	if err != nil {
		return err
	}
	*v = DisclaimerLocation(s)
	return nil
}

// UnmarshalYAML rejects unknown personas at parse time.
func (v *Persona) UnmarshalYAML(value *yaml.Node) error {
	s, err := decodeEnum(value, "persona", personaValues)
	if err != nil {
		return err
	}
	*v = Persona(s)
	return nil
}

// UnmarshalYAML rejects unknown persona modifiers at parse time.
func (v *PersonaModifier) UnmarshalYAML(value *yaml.Node) error {
	s, err := decodeEnum(value, "persona modifier", personaModifierValues)
	if err != nil {
		return err
	}
	*v = PersonaModifier(s)
	return nil
}

// UnmarshalYAML rejects unknown science explicitness values at parse time.
func (v *ScienceExplicitness) UnmarshalYAML(value *yaml.Node) error {
	s, err := decodeEnum(value, "science_explicitness", scienceExplicitnessValues)
	if err != nil {
		return err
	}
	*v = ScienceExplicitness(s)
	return nil
}

// UnmarshalYAML rejects unknown personal presence values at parse time.
func (v *PersonalPresence) UnmarshalYAML(value *yaml.Node) error {
	s, err := decodeEnum(value, "personal_presence", personalPresenceValues)
	if err != nil {
		return err
	}
	*v = PersonalPresence(s)
	return nil
}

// UnmarshalYAML rejects unknown narration modes at parse time.
func (v *NarrationMode) UnmarshalYAML(value *yaml.Node) error {
	s, err := decodeEnum(value, "narration_mode", narrationModeValues)
	if err != nil {
		return err
	}
	*v = NarrationMode(s)
	return nil
}

// UnmarshalYAML rejects unknown audiences at parse time.
func (v *PrimaryAudience) UnmarshalYAML(value *yaml.Node) error {
	s, err := decodeEnum(value, "primary_audience", primaryAudienceValues)
	if err != nil {
		return err
	}
	*v = PrimaryAudience(s)
	return nil
}

// UnmarshalYAML rejects unknown sophistication grades at parse time.
func (v *AudienceSophistication) UnmarshalYAML(value *yaml.Node) error {
	s, err := decodeEnum(value, "audience_sophistication", audienceSophisticationValues)
	if err != nil {
		return err
	}
	*v = AudienceSophistication(s)
	return nil
}

// UnmarshalYAML rejects unknown commercial postures at parse time.
func (v *CommercialPosture) UnmarshalYAML(value *yaml.Node) error {
	s, err := decodeEnum(value, "commercial_posture", commercialPostureValues)
	if err != nil {
		return err
	}
	*v = CommercialPosture(s)
	return nil
}

// UnmarshalYAML rejects unknown CTA policies at parse time.
func (v *CTAPolicy) UnmarshalYAML(value *yaml.Node) error {
	s, err := decodeEnum(value, "cta_policy", ctaPolicyValues)
	if err != nil {
		return err
	}
	*v = CTAPolicy(s)
	return nil
}

// UnmarshalYAML rejects unknown prohibited behaviors at parse time.
func (v *ProhibitedBehavior) UnmarshalYAML(value *yaml.Node) error {
	s, err := decodeEnum(value, "prohibited behavior", prohibitedBehaviorValues)
	if err != nil {
		return err
	}
	*v = ProhibitedBehavior(s)
	return nil
}

// UnmarshalYAML rejects unknown content depths at parse time.
func (v *ContentDepth) UnmarshalYAML(value *yaml.Node) error {
	s, err := decodeEnum(value, "content depth", contentDepthValues)
	if err != nil {
		return err
	}
	*v = ContentDepth(s)
	return nil
}

// UnmarshalYAML rejects unknown delivery channels at parse time.
func (v *DeliveryChannel) UnmarshalYAML(value *yaml.Node) error {
	s, err := decodeEnum(value, "delivery channel", deliveryChannelValues)
	if err != nil {
		return err
	}
	*v = DeliveryChannel(s)
	return nil
}

// UnmarshalYAML rejects unknown delivery destinations at parse time.
func (v *DeliveryDestination) UnmarshalYAML(value *yaml.Node) error {
	s, err := decodeEnum(value, "delivery destination", deliveryDestinationValues)
	if err != nil {
		return err
	}
	*v = DeliveryDestination(s)
	return nil
}

// UnmarshalYAML rejects unknown delivery strategies at parse time.
func (v *DeliveryStrategy) UnmarshalYAML(value *yaml.Node) error {
	s, err := decodeEnum(value, "delivery_strategy", deliveryStrategyValues)
	if err != nil {
		return err
	}
	*v = DeliveryStrategy(s)
	return nil
}

// UnmarshalYAML rejects unknown cadences at parse time.
func (v *PublicationCadence) UnmarshalYAML(value *yaml.Node) error {
	s, err := decodeEnum(value, "publication_cadence", publicationCadenceValues)
	if err != nil {
		return err
	}
	*v = PublicationCadence(s)
	return nil
}

// UnmarshalYAML rejects unknown weekdays at parse time.
func (v *Weekday) UnmarshalYAML(value *yaml.Node) error {
	s, err := decodeEnum(value, "preferred publish day", weekdayValues)
	if err != nil {
		return err
	}
	*v = Weekday(s)
	return nil
}

// UnmarshalYAML rejects unknown timezones at parse time.
func (v *Timezone) UnmarshalYAML(value *yaml.Node) error {
	s, err := decodeEnum(value, "time_zone", timezoneValues)
	if err != nil {
		return err
	}
	*v = Timezone(s)
	return nil
}

// UnmarshalYAML rejects unknown products modes at parse time.
func (v *ProductsMode) UnmarshalYAML(value *yaml.Node) error {
	s, err := decodeEnum(value, "products.mode", productsModeValues)
	if err != nil {
		return err
	}
	*v = ProductsMode(s)
	return nil
}
