package adapters

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/jonathan/content-factory/internal/types"
	"github.com/jonathan/content-factory/internal/validation"
)

// EmailPayload is the JSON envelope handed to the email sending system.
type EmailPayload struct {
	Subject   string        `json:"subject"`
	Preheader string        `json:"preheader"`
	BodyText  string        `json:"body_text"`
	BodyHTML  string        `json:"body_html"`
	Meta      EmailMetadata `json:"meta"`
}

// EmailMetadata identifies the run that produced an email payload.
type EmailMetadata struct {
	BrandID string `json:"brand_id"`
	RunID   string `json:"run_id"`
	Intent  string `json:"intent"`
	Form    string `json:"form"`
	Domain  string `json:"domain"`
}

// RenderEmailPayload builds the email payload for an artifact. The email
// channel ships only to the email_list destination.
func RenderEmailPayload(brand *types.BrandProfile, req *types.ContentRequest, artifact *types.ContentArtifact) (*EmailPayload, error) {
	if err := ensureTargetMatches("email", types.ChannelEmail, types.DestinationEmailList, req.DeliveryTarget); err != nil {
		return nil, err
	}

	subject, preheader := validation.EmailSubjectAndPreheader(brand, req, artifact)

	var textParts []string
	for _, sec := range artifact.Sections {
		body := blocksToPlainText(sec.Blocks)
		if body == "" {
			continue
		}
		if sec.Heading != "" {
			textParts = append(textParts, sec.Heading)
		}
		textParts = append(textParts, body)
	}

	return &EmailPayload{
		Subject:   subject,
		Preheader: preheader,
		BodyText:  strings.TrimSpace(strings.Join(textParts, "\n\n")),
		BodyHTML:  renderEmailHTML(artifact),
		Meta: EmailMetadata{
			BrandID: artifact.BrandID,
			RunID:   artifact.RunID,
			Intent:  artifact.Intent,
			Form:    artifact.Form,
			Domain:  artifact.Domain,
		},
	}, nil
}

// RenderEmail renders the artifact as a pretty-printed email payload JSON.
func RenderEmail(brand *types.BrandProfile, req *types.ContentRequest, artifact *types.ContentArtifact) (*RenderedDelivery, error) {
	payload, err := RenderEmailPayload(brand, req, artifact)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, &Error{Message: "failed to marshal email payload", Cause: err}
	}
	return &RenderedDelivery{
		Filename: fmt.Sprintf("%s.email.json", artifact.RunID),
		MIMEType: "application/json",
		Content:  string(data),
	}, nil
}

// renderEmailHTML produces minimal inline-styled HTML with every text value
// escaped.
func renderEmailHTML(artifact *types.ContentArtifact) string {
	var parts []string
	parts = append(parts, `<div style="font-family: system-ui, -apple-system, Segoe UI, Roboto, Arial; line-height: 1.5;">`)

	for _, sec := range artifact.Sections {
		if sec.Heading != "" {
			parts = append(parts, fmt.Sprintf("<h2>%s</h2>", html.EscapeString(sec.Heading)))
		}
		for _, b := range sec.Blocks {
			switch b.Type {
			case types.BlockParagraph:
				if t := strings.TrimSpace(b.Text); t != "" {
					parts = append(parts, fmt.Sprintf("<p>%s</p>", html.EscapeString(t)))
				}
			case types.BlockCallout:
				if t := strings.TrimSpace(b.Text); t != "" {
					parts = append(parts,
						`<div style="border-left: 4px solid #ddd; padding: 8px 12px; margin: 12px 0; color: #333;">`+
							html.EscapeString(t)+"</div>")
				}
			case types.BlockQuote:
				if t := strings.TrimSpace(b.Text); t != "" {
					parts = append(parts, fmt.Sprintf("<blockquote>%s</blockquote>", html.EscapeString(t)))
				}
			case types.BlockBullets:
				parts = append(parts, renderEmailList("ul", b.Items))
			case types.BlockNumbered:
				parts = append(parts, renderEmailList("ol", b.Items))
			case types.BlockDivider:
				parts = append(parts, "<hr />")
			}
		}
	}

	parts = append(parts, "</div>")
	return strings.Join(parts, "\n")
}

func renderEmailList(tag string, items []string) string {
	var parts []string
	parts = append(parts, "<"+tag+">")
	for _, it := range items {
		if t := strings.TrimSpace(it); t != "" {
			parts = append(parts, fmt.Sprintf("<li>%s</li>", html.EscapeString(t)))
		}
	}
	parts = append(parts, "</"+tag+">")
	return strings.Join(parts, "\n")
}
