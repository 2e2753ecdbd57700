package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/content-factory/internal/types"
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Scaffold brand and request YAML for a new client",
	Long:  "Writes a conservative starter brand profile and a matching content request. The scaffold is structurally valid; edit the allowlist, policies, and sources before running the pipeline.",
	RunE:  runOnboard,
}

var (
	onboardBrandID          string
	onboardDomainsSupported string
	onboardDomainPrimary    string
	onboardPublishDate      string
	onboardBaseDir          string
)

func init() {
	onboardCmd.Flags().StringVar(&onboardBrandID, "brand-id", "", "Brand identifier (required)")
	onboardCmd.Flags().StringVar(&onboardDomainsSupported, "domains-supported", "", "Comma-separated domains, e.g. leadership,tech (required)")
	onboardCmd.Flags().StringVar(&onboardDomainPrimary, "domain-primary", "", "Primary domain (required)")
	onboardCmd.Flags().StringVar(&onboardPublishDate, "publish-date", "", "YYYY-MM-DD (defaults to today)")
	onboardCmd.Flags().StringVar(&onboardBaseDir, "base-dir", ".", "Directory to write brands/ and requests/ under")

	for _, flag := range []string{"brand-id", "domains-supported", "domain-primary"} {
		if err := onboardCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(onboardCmd)
}

func runOnboard(_ *cobra.Command, _ []string) error {
	primary := types.Domain(strings.TrimSpace(onboardDomainPrimary))
	if primary == "" {
		return fmt.Errorf("domain-primary must not be empty")
	}

	// Primary domain leads the supported list.
	domains := []types.Domain{primary}
	for _, d := range strings.Split(onboardDomainsSupported, ",") {
		domain := types.Domain(strings.TrimSpace(d))
		if domain == "" || domain == primary {
			continue
		}
		domains = append(domains, domain)
	}

	publishDate := time.Now()
	if onboardPublishDate != "" {
		parsed, err := time.Parse("2006-01-02", onboardPublishDate)
		if err != nil {
			return fmt.Errorf("invalid --publish-date %q: %w", onboardPublishDate, err)
		}
		publishDate = parsed
	}

	brand := scaffoldBrand(onboardBrandID, domains, primary)
	request := scaffoldRequest(onboardBrandID, primary, publishDate)

	brandsDir := filepath.Join(onboardBaseDir, "brands")
	requestsDir := filepath.Join(onboardBaseDir, "requests")
	for _, dir := range []string{brandsDir, requestsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	brandPath := filepath.Join(brandsDir, fmt.Sprintf("%s.yaml", onboardBrandID))
	requestPath := filepath.Join(requestsDir, fmt.Sprintf("%s_%s.yaml", onboardBrandID, publishDate.Format("2006-01-02")))

	if err := writeYAML(brandPath, brand); err != nil {
		return err
	}
	if err := writeYAML(requestPath, request); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Wrote brand: %s\n", brandPath)
	fmt.Fprintf(os.Stdout, "Wrote request: %s\n", requestPath)
	fmt.Fprintln(os.Stdout, "Next: edit the allowlist, policies, and sources; then validate.")
	return nil
}

// scaffoldBrand returns a conservative starter profile: valid shape,
// placeholder values.
func scaffoldBrand(brandID string, domains []types.Domain, primary types.Domain) *types.BrandProfile {
	personas := make(map[types.Domain]types.PersonaConfig, len(domains))
	for _, d := range domains {
		personas[d] = types.PersonaConfig{
			PrimaryPersona:      types.PersonaPracticalExpert,
			PersonaModifiers:    []types.PersonaModifier{types.ModifierNone},
			ScienceExplicitness: types.ScienceImplied,
			PersonalPresence:    types.PresenceNone,
			NarrationMode:       types.NarrationThirdPersonOnly,
		}
	}

	return &types.BrandProfile{
		BrandID:        brandID,
		BrandArchetype: types.ArchetypeTrustedGuide,
		BrandSources: types.BrandSources{
			RequireAtLeastOneOfPurposes: []types.BrandSourcePurpose{types.PurposeHomepage},
			Sources: []types.BrandSource{{
				SourceID: "homepage",
				Kind:     types.SourceKindURL,
				Purpose:  types.PurposeHomepage,
				Ref:      "https://example.com",
			}},
		},
		DomainsSupported: domains,
		DomainPrimary:    primary,
		Audience: types.Audience{
			PrimaryAudience:        types.AudienceGeneralConsumers,
			AudienceSophistication: types.SophisticationMedium,
		},
		ContentStrategy: types.ContentStrategy{
			AllowedIntents:                []types.ContentIntent{types.IntentThoughtLeadership},
			AllowedThoughtLeadershipForms: []types.Form{types.FormCoreInsightEssay},
			DefaultContentDepth:           types.DepthShort,
		},
		TopicPolicy: types.TopicPolicy{
			Allowlist: []string{
				"Replace this with a real topic 1",
				"Replace this with a real topic 2",
			},
		},
		PersonaByDomain: personas,
		CommercialPolicy: types.CommercialPolicy{
			CommercialPosture: types.PostureInvisible,
			CTAPolicy:         types.CTANone,
			ProhibitedBehaviors: []types.ProhibitedBehavior{
				types.ProhibitFakeScarcity,
				types.ProhibitHypeSuperlatives,
				types.ProhibitPressureLanguage,
			},
		},
		DisclaimerPolicy: types.DisclaimerPolicy{
			Required:       true,
			DisclaimerText: "Replace with the client's required disclosure/disclaimer.",
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

func scaffoldRequest(brandID string, domain types.Domain, publishDate time.Time) *types.ContentRequest {
	return &types.ContentRequest{
		BrandID: brandID,
		Publish: types.Publish{PublishDate: publishDate.Format("2006-01-02")},
		Intent:  types.IntentThoughtLeadership,
		Form:    types.FormCoreInsightEssay,
		Domain:  domain,
		Topic:   types.Topic{Mode: types.TopicModeAuto},
		DeliveryTarget: types.DeliveryTarget{
			Destination: types.DestinationClientWebsite,
			Channel:     types.ChannelBlogArticle,
		},
		Products: types.Products{Mode: types.ProductsModeNone},
	}
}

func writeYAML(path string, doc any) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
