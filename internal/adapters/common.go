// Package adapters renders validated artifacts into channel-specific
// deliverables. Each adapter serves exactly one delivery channel and refuses
// any other target.
package adapters

import (
	"fmt"
	"strings"

	"github.com/jonathan/content-factory/internal/types"
)

// RenderedDelivery is one channel-specific output ready to write.
type RenderedDelivery struct {
	Filename string
	MIMEType string
	Content  string
}

// ensureTargetMatches rejects a request whose delivery target does not match
// the adapter's channel/destination pair.
func ensureTargetMatches(adapter string, wantChannel types.DeliveryChannel, wantDestination types.DeliveryDestination, target types.DeliveryTarget) error {
	if target.Channel != wantChannel {
		return &TargetMismatchError{
			Adapter:  adapter,
			Field:    "channel",
			Expected: string(wantChannel),
			Got:      string(target.Channel),
		}
	}
	if target.Destination != wantDestination {
		return &TargetMismatchError{
			Adapter:  adapter,
			Field:    "destination",
			Expected: string(wantDestination),
			Got:      string(target.Destination),
		}
	}
	return nil
}

// blocksToPlainText renders a block list as readable plain text: one line per
// paragraph/callout/quote, "- " bullets, "1. " numbered items, "---" dividers.
func blocksToPlainText(blocks []types.Block) string {
	var out []string
	for _, b := range blocks {
		switch b.Type {
		case types.BlockParagraph, types.BlockCallout, types.BlockQuote:
			if t := strings.TrimSpace(b.Text); t != "" {
				out = append(out, t)
			}
		case types.BlockBullets:
			for _, it := range b.Items {
				if t := strings.TrimSpace(it); t != "" {
					out = append(out, "- "+t)
				}
			}
		case types.BlockNumbered:
			n := 1
			for _, it := range b.Items {
				if t := strings.TrimSpace(it); t != "" {
					out = append(out, fmt.Sprintf("%d. %s", n, t))
					n++
				}
			}
		case types.BlockDivider:
			out = append(out, "---")
		}
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

// sectionToPlainText renders one section as heading plus body, separated by a
// blank line.
func sectionToPlainText(section types.Section) string {
	var parts []string
	if h := strings.TrimSpace(section.Heading); h != "" {
		parts = append(parts, h)
	}
	if body := blocksToPlainText(section.Blocks); body != "" {
		parts = append(parts, body)
	}
	return strings.TrimSpace(strings.Join(parts, "\n\n"))
}
