package adapters

import (
	"fmt"
	"strings"

	"github.com/jonathan/content-factory/internal/compiler"
	"github.com/jonathan/content-factory/internal/types"
)

// RenderLinkedInText renders the artifact as plain text for a LinkedIn
// long-form post: topic first, then each section as heading plus body,
// blank-line separated.
func RenderLinkedInText(req *types.ContentRequest, artifact *types.ContentArtifact) (string, error) {
	if err := ensureTargetMatches("linkedin", types.ChannelSocialLongform, types.DestinationLinkedIn, req.DeliveryTarget); err != nil {
		return "", err
	}

	var parts []string
	if topic := compiler.ExtractTopic(artifact); topic != "" {
		parts = append(parts, topic)
	}
	for _, sec := range artifact.Sections {
		if t := sectionToPlainText(sec); t != "" {
			parts = append(parts, t)
		}
	}

	return strings.TrimSpace(strings.Join(parts, "\n\n")) + "\n", nil
}

// RenderLinkedIn renders the artifact as a LinkedIn plain-text delivery.
func RenderLinkedIn(req *types.ContentRequest, artifact *types.ContentArtifact) (*RenderedDelivery, error) {
	text, err := RenderLinkedInText(req, artifact)
	if err != nil {
		return nil, err
	}
	return &RenderedDelivery{
		Filename: fmt.Sprintf("%s.linkedin.txt", artifact.RunID),
		MIMEType: "text/plain",
		Content:  text,
	}, nil
}
