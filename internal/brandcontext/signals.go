// Package brandcontext builds and caches per-brand signal context.
package brandcontext

import (
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/content-factory/internal/types"
)

// Per-source extraction caps. Merged caps are larger; see merge.go.
const (
	maxTitlesPerSource       = 5
	maxHeadingsPerSource     = 20
	maxDescriptionsPerSource = 5
	maxSnippetsPerSource     = 10
	maxKeyTermsPerSource     = 25
)

var wordPattern = regexp.MustCompile(`[a-z][a-z\-']{2,}`)

var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "that": true,
	"this": true, "you": true, "your": true, "from": true, "are": true,
	"our": true, "but": true, "not": true, "have": true, "has": true,
	"was": true, "were": true, "will": true, "can": true, "how": true,
	"what": true, "why": true, "when": true, "who": true, "their": true,
	"they": true, "them": true, "into": true, "about": true, "more": true,
	"less": true,
}

// ExtractSignals mines lightweight brand signals from HTML or plain text.
// It is a tolerant heuristic matcher, not a strict parser: malformed input
// degrades to empty signals rather than failing the build.
func ExtractSignals(text string) types.BrandSignals {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		// Unparseable even as a fragment; fall back to term mining only.
		return types.BrandSignals{KeyTerms: topTerms(text, maxKeyTermsPerSource)}
	}

	var signals types.BrandSignals

	doc.Find("title").Each(func(_ int, s *goquery.Selection) {
		if t := cleanText(s.Text()); t != "" && len(signals.Titles) < maxTitlesPerSource {
			signals.Titles = append(signals.Titles, t)
		}
	})

	doc.Find("h1, h2").Each(func(_ int, s *goquery.Selection) {
		if h := cleanText(s.Text()); h != "" && len(signals.Headings) < maxHeadingsPerSource {
			signals.Headings = append(signals.Headings, h)
		}
	})

	doc.Find(`meta[name="description"]`).Each(func(_ int, s *goquery.Selection) {
		if content, ok := s.Attr("content"); ok {
			if d := cleanText(content); d != "" && len(signals.Descriptions) < maxDescriptionsPerSource {
				signals.Descriptions = append(signals.Descriptions, d)
			}
		}
	})

	// Positioning snippets: the most prominent headings and descriptions.
	for i, h := range signals.Headings {
		if i >= 5 {
			break
		}
		signals.PositioningSnippets = append(signals.PositioningSnippets, h)
	}
	for i, d := range signals.Descriptions {
		if i >= 3 {
			break
		}
		signals.PositioningSnippets = append(signals.PositioningSnippets, d)
	}
	if len(signals.PositioningSnippets) > maxSnippetsPerSource {
		signals.PositioningSnippets = signals.PositioningSnippets[:maxSnippetsPerSource]
	}

	doc.Find("script, style, noscript").Remove()
	body := doc.Text()
	if strings.TrimSpace(body) == "" {
		body = text
	}
	signals.KeyTerms = topTerms(body, maxKeyTermsPerSource)

	return signals
}

// topTerms returns the most frequent content words after stop-word removal,
// ties broken by first occurrence.
func topTerms(text string, limit int) []string {
	tokens := wordPattern.FindAllString(strings.ToLower(text), -1)

	freq := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, tok := range tokens {
		if stopWords[tok] {
			continue
		}
		if _, ok := freq[tok]; !ok {
			firstSeen[tok] = i
		}
		freq[tok]++
	}

	terms := make([]string, 0, len(freq))
	for t := range freq {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return firstSeen[terms[i]] < firstSeen[terms[j]]
	})

	if len(terms) > limit {
		terms = terms[:limit]
	}
	return terms
}

func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
