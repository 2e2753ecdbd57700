package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/content-factory/internal/compiler"
	"github.com/jonathan/content-factory/internal/types"
)

// MaxPreheaderLength is the email preheader character cap.
const MaxPreheaderLength = 140

// MaxLinkedInLength is the LinkedIn plain-text character cap.
const MaxLinkedInLength = 3000

// ValidateChannel runs channel QA: deliverability and shape checks against
// the request's delivery target. These are hard failures so the pipeline
// never silently emits broken outputs; every problem is collected into one
// ChannelError.
func ValidateChannel(brand *types.BrandProfile, req *types.ContentRequest, artifact *types.ContentArtifact) error {
	var problems []string

	topic := compiler.ExtractTopic(artifact)
	if strings.TrimSpace(topic) == "" {
		problems = append(problems, "artifact must include a Topic: paragraph for downstream delivery")
	}

	if len(artifact.Claims) == 0 {
		problems = append(problems, "artifact claims must be non-empty after generation")
	}

	if !hasNonTopicParagraph(artifact) {
		problems = append(problems, "artifact must include at least one non-topic paragraph after generation")
	}

	// Disclaimer placement is channel QA because it affects rendered outputs.
	if brand.DisclaimerRequiredAt(types.DisclaimerFooter) {
		problems = append(problems, checkFooterDisclaimer(brand, artifact)...)
	}

	if req.DeliveryTarget.Channel == types.ChannelEmail {
		problems = append(problems, checkEmail(brand, req, artifact)...)
	}

	if req.DeliveryTarget.Channel == types.ChannelSocialLongform &&
		req.DeliveryTarget.Destination == types.DestinationLinkedIn {
		problems = append(problems, checkLinkedInLength(artifact, topic)...)
	}

	if len(problems) > 0 {
		return &ChannelError{Problems: problems}
	}
	return nil
}

// EmailSubjectAndPreheader derives the email envelope from the artifact:
// subject is the topic (falling back to "brand_id: intent"), preheader is the
// first non-topic paragraph truncated to the preheader cap.
func EmailSubjectAndPreheader(brand *types.BrandProfile, req *types.ContentRequest, artifact *types.ContentArtifact) (string, string) {
	subject := compiler.ExtractTopic(artifact)
	if subject == "" {
		subject = fmt.Sprintf("%s: %s", brand.BrandID, req.Intent)
	}

	var preheader string
	for _, sec := range artifact.Sections {
		for _, b := range sec.Blocks {
			if b.Type != types.BlockParagraph {
				continue
			}
			txt := strings.TrimSpace(b.Text)
			if txt == "" || strings.HasPrefix(strings.ToLower(txt), "topic:") {
				continue
			}
			preheader = truncate(txt, MaxPreheaderLength)
			break
		}
		if preheader != "" {
			break
		}
	}

	return strings.TrimSpace(subject), strings.TrimSpace(preheader)
}

func hasNonTopicParagraph(artifact *types.ContentArtifact) bool {
	for _, sec := range artifact.Sections {
		for _, b := range sec.Blocks {
			if b.Type != types.BlockParagraph {
				continue
			}
			txt := strings.TrimSpace(b.Text)
			if txt == "" || strings.HasPrefix(strings.ToLower(txt), "topic:") {
				continue
			}
			return true
		}
	}
	return false
}

func checkFooterDisclaimer(brand *types.BrandProfile, artifact *types.ContentArtifact) []string {
	disclaimer := strings.TrimSpace(brand.DisclaimerPolicy.DisclaimerText)
	if disclaimer == "" {
		return nil
	}

	if len(artifact.Sections) == 0 {
		return []string{"footer disclaimer required but artifact has no sections"}
	}
	last := artifact.Sections[len(artifact.Sections)-1]
	if len(last.Blocks) == 0 {
		return []string{"footer disclaimer required but artifact has no sections/blocks"}
	}

	lastBlock := last.Blocks[len(last.Blocks)-1]
	if lastBlock.Type != types.BlockCallout || strings.TrimSpace(lastBlock.Text) != disclaimer {
		return []string{"footer disclaimer must be the last block in the last section"}
	}
	return nil
}

func checkEmail(brand *types.BrandProfile, req *types.ContentRequest, artifact *types.ContentArtifact) []string {
	var problems []string

	// The adapter enforces this too; QA gives a clearer failure earlier.
	if req.DeliveryTarget.Destination != types.DestinationEmailList {
		problems = append(problems, "email channel requires delivery_target.destination=email_list")
	}

	subject, preheader := EmailSubjectAndPreheader(brand, req, artifact)
	if subject == "" {
		problems = append(problems, "email subject must not be empty")
	}
	if preheader == "" {
		problems = append(problems, "email preheader must not be empty")
	}
	if len([]rune(preheader)) > MaxPreheaderLength {
		problems = append(problems, fmt.Sprintf("email preheader must be <= %d characters", MaxPreheaderLength))
	}

	return problems
}

// checkLinkedInLength approximates the rendered LinkedIn text the same way
// the adapter does and enforces the platform cap.
func checkLinkedInLength(artifact *types.ContentArtifact, topic string) []string {
	var parts []string
	if topic != "" {
		parts = append(parts, topic)
	}
	for _, sec := range artifact.Sections {
		if h := strings.TrimSpace(sec.Heading); h != "" {
			parts = append(parts, h)
		}
		for _, b := range sec.Blocks {
			switch b.Type {
			case types.BlockParagraph, types.BlockCallout, types.BlockQuote:
				if t := strings.TrimSpace(b.Text); t != "" {
					parts = append(parts, t)
				}
			case types.BlockBullets, types.BlockNumbered:
				for _, it := range b.Items {
					if t := strings.TrimSpace(it); t != "" {
						parts = append(parts, t)
					}
				}
			}
		}
	}

	rendered := strings.TrimSpace(strings.Join(parts, "\n\n"))
	if len([]rune(rendered)) > MaxLinkedInLength {
		return []string{fmt.Sprintf("LinkedIn social_longform output must be <= %d characters", MaxLinkedInLength)}
	}
	return nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return s
}
