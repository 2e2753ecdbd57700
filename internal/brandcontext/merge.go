// Package brandcontext builds and caches per-brand signal context.
package brandcontext

import "github.com/jonathan/content-factory/internal/types"

// Merged-signal caps across all sources.
const (
	maxMergedTitles       = 10
	maxMergedHeadings     = 50
	maxMergedDescriptions = 10
	maxMergedSnippets     = 25
	maxMergedKeyTerms     = 50
)

// MergeSignals combines per-source signals into one set: deduplicated by
// exact value, first-seen order preserved, capped to fixed sizes.
func MergeSignals(signals []types.BrandSignals) types.BrandSignals {
	var merged types.BrandSignals

	seenTitles := make(map[string]bool)
	seenHeadings := make(map[string]bool)
	seenDescriptions := make(map[string]bool)
	seenSnippets := make(map[string]bool)
	seenTerms := make(map[string]bool)

	for _, s := range signals {
		for _, t := range s.Titles {
			if !seenTitles[t] {
				seenTitles[t] = true
				merged.Titles = append(merged.Titles, t)
			}
		}
		for _, h := range s.Headings {
			if !seenHeadings[h] {
				seenHeadings[h] = true
				merged.Headings = append(merged.Headings, h)
			}
		}
		for _, d := range s.Descriptions {
			if !seenDescriptions[d] {
				seenDescriptions[d] = true
				merged.Descriptions = append(merged.Descriptions, d)
			}
		}
		for _, p := range s.PositioningSnippets {
			if !seenSnippets[p] {
				seenSnippets[p] = true
				merged.PositioningSnippets = append(merged.PositioningSnippets, p)
			}
		}
		for _, k := range s.KeyTerms {
			if !seenTerms[k] {
				seenTerms[k] = true
				merged.KeyTerms = append(merged.KeyTerms, k)
			}
		}
	}

	merged.Titles = capList(merged.Titles, maxMergedTitles)
	merged.Headings = capList(merged.Headings, maxMergedHeadings)
	merged.Descriptions = capList(merged.Descriptions, maxMergedDescriptions)
	merged.PositioningSnippets = capList(merged.PositioningSnippets, maxMergedSnippets)
	merged.KeyTerms = capList(merged.KeyTerms, maxMergedKeyTerms)

	return merged
}

func capList(list []string, limit int) []string {
	if len(list) > limit {
		return list[:limit]
	}
	return list
}
