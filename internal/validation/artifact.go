// Package validation checks filled artifacts: once against the structural
// contract with their brand and request, and once against the delivery
// channel's shape requirements.
package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/content-factory/internal/types"
)

// ValidateArtifact checks a filled artifact against its brand and request.
// Every problem found is collected into a single ArtifactContractError.
func ValidateArtifact(brand *types.BrandProfile, req *types.ContentRequest, artifact *types.ContentArtifact) error {
	var problems []string

	if artifact.BrandID != brand.BrandID {
		problems = append(problems, "artifact brand_id must match the brand profile's brand_id")
	}
	if artifact.Intent != string(req.Intent) {
		problems = append(problems, fmt.Sprintf("artifact intent %q must match request intent %q", artifact.Intent, req.Intent))
	}
	if artifact.Form != string(req.Form) {
		problems = append(problems, fmt.Sprintf("artifact form %q must match request form %q", artifact.Form, req.Form))
	}
	if artifact.Domain != string(req.Domain) {
		problems = append(problems, fmt.Sprintf("artifact domain %q must match request domain %q", artifact.Domain, req.Domain))
	}

	if req.IsProductForm() && len(artifact.Products) == 0 {
		problems = append(problems, "artifact products must be present for product forms")
	}
	if !req.IsProductForm() && artifact.Products != nil {
		problems = append(problems, "artifact products must be null for non-product forms")
	}

	if brand.DisclaimerPolicy.Required {
		disclaimer := strings.TrimSpace(brand.DisclaimerPolicy.DisclaimerText)
		if !hasDisclaimerCallout(artifact, disclaimer) {
			problems = append(problems, "required disclaimer block not found in artifact")
		}
	}

	if len(problems) > 0 {
		return &ArtifactContractError{Problems: problems}
	}
	return nil
}

// hasDisclaimerCallout reports whether any callout block carries exactly the
// brand's disclaimer text.
func hasDisclaimerCallout(artifact *types.ContentArtifact, disclaimer string) bool {
	for _, sec := range artifact.Sections {
		for _, b := range sec.Blocks {
			if b.Type == types.BlockCallout && strings.TrimSpace(b.Text) == disclaimer {
				return true
			}
		}
	}
	return false
}
