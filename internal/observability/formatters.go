// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jonathan/content-factory/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", padLine(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", padLine(line))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// padLine truncates by display width and pads to the box interior width.
func padLine(line string) string {
	if runewidth.StringWidth(line) > boxWidth-4 {
		line = runewidth.Truncate(line, boxWidth-4, "...")
	}
	return runewidth.FillRight(line, boxWidth-4)
}

func shorten(s string, limit int) string {
	if runewidth.StringWidth(s) > limit {
		return runewidth.Truncate(s, limit, "...")
	}
	return s
}

// PrintBrandProfile outputs a human-readable summary of the loaded brand profile.
func (p *Printer) PrintBrandProfile(brand *types.BrandProfile) {
	if brand == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Brand:      %s\n", brand.BrandID))
	sb.WriteString(fmt.Sprintf("Archetype:  %s\n", brand.BrandArchetype))
	sb.WriteString(fmt.Sprintf("Audience:   %s (%s)\n", brand.Audience.PrimaryAudience, brand.Audience.AudienceSophistication))

	domains := make([]string, 0, len(brand.DomainsSupported))
	for _, d := range brand.DomainsSupported {
		domains = append(domains, string(d))
	}
	sb.WriteString(fmt.Sprintf("Domains:    %s\n", shorten(strings.Join(domains, ", "), 40)))
	sb.WriteString("\n")

	sb.WriteString("Topic allowlist:\n")
	count := min(len(brand.TopicPolicy.Allowlist), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", shorten(brand.TopicPolicy.Allowlist[i], 48)))
	}
	if len(brand.TopicPolicy.Allowlist) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(brand.TopicPolicy.Allowlist)-maxItemsToShow))
	}

	if brand.DisclaimerPolicy.Required {
		sb.WriteString("\n")
		locations := make([]string, 0, len(brand.DisclaimerPolicy.Locations))
		for _, l := range brand.DisclaimerPolicy.Locations {
			locations = append(locations, string(l))
		}
		sb.WriteString(fmt.Sprintf("Disclaimers: %s\n", strings.Join(locations, ", ")))
	}

	p.printBox("BRAND PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRequest outputs a human-readable summary of the content request.
func (p *Printer) PrintRequest(req *types.ContentRequest) {
	if req == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Brand:    %s\n", req.BrandID))
	sb.WriteString(fmt.Sprintf("Intent:   %s\n", req.Intent))
	sb.WriteString(fmt.Sprintf("Form:     %s\n", req.Form))
	sb.WriteString(fmt.Sprintf("Domain:   %s\n", req.Domain))
	sb.WriteString(fmt.Sprintf("Publish:  %s\n", req.Publish.PublishDate))
	sb.WriteString(fmt.Sprintf("Target:   %s via %s\n", req.DeliveryTarget.Destination, req.DeliveryTarget.Channel))

	topic := req.Topic.Value
	if topic == "" {
		topic = fmt.Sprintf("(%s)", req.Topic.Mode)
	}
	sb.WriteString(fmt.Sprintf("Topic:    %s", shorten(topic, 44)))

	if len(req.Products.Items) > 0 {
		sb.WriteString(fmt.Sprintf("\nProducts: %d picks (%s)", len(req.Products.Items), req.Products.Mode))
	}

	p.printBox("CONTENT REQUEST", sb.String())
}

// PrintViolations outputs any policy violations found.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations *types.Violations) {
	if violations == nil || len(violations.Violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %s │\n", padLine("✅ NO VIOLATIONS FOUND"))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", len(violations.Violations)))

	for i, v := range violations.Violations {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", v.Type))
		sb.WriteString(fmt.Sprintf("  %s\n", shorten(v.Details, 45)))
		if i < len(violations.Violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("POLICY VIOLATIONS", sb.String())
}

// PrintContextSummary outputs a summary of a brand context artifact.
func (p *Printer) PrintContextSummary(artifact *types.BrandContextArtifact) {
	if artifact == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Brand:     %s\n", artifact.BrandID))
	sb.WriteString(fmt.Sprintf("Generated: %s\n", artifact.GeneratedAt))
	sb.WriteString(fmt.Sprintf("Sources:   %d\n", len(artifact.Sources)))
	sb.WriteString("\n")

	count := min(len(artifact.Sources), maxItemsToShow)
	for i := 0; i < count; i++ {
		src := artifact.Sources[i]
		status := "ok"
		if !src.OK {
			status = "failed"
		}
		sb.WriteString(fmt.Sprintf("  • %s [%s] %s\n", src.SourceID, status, shorten(src.Ref, 30)))
	}
	if len(artifact.Sources) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(artifact.Sources)-maxItemsToShow))
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Signals: %d titles, %d headings, %d terms",
		len(artifact.Signals.Titles), len(artifact.Signals.Headings), len(artifact.Signals.KeyTerms)))

	p.printBox("BRAND CONTEXT", sb.String())
}

// PrintDeliverySummary outputs the files a run produced.
func (p *Printer) PrintDeliverySummary(runID string, paths []string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run: %s\n\n", runID))
	for _, path := range paths {
		sb.WriteString(fmt.Sprintf("  • %s\n", shorten(path, 48)))
	}

	p.printBox("RUN OUTPUTS", strings.TrimSuffix(sb.String(), "\n"))
}
