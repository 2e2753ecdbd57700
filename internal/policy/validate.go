// Package policy validates a content request against its owning brand profile
// and the illegal matrix.
package policy

import (
	"fmt"
	"time"

	"github.com/jonathan/content-factory/internal/matrix"
	"github.com/jonathan/content-factory/internal/types"
)

// ValidateRequest cross-checks a content request against its owning brand
// profile and the illegal matrix. Every check runs even after the first
// failure; on any violation it returns a *ViolationError listing all of them.
func ValidateRequest(brand *types.BrandProfile, req *types.ContentRequest, m *matrix.Matrix) error {
	var violations []types.Violation

	add := func(vtype, field, details string) {
		violations = append(violations, types.Violation{
			Type:     vtype,
			Severity: "error",
			Field:    field,
			Details:  details,
		})
	}

	if req.BrandID != brand.BrandID {
		add("brand_mismatch", "brand_id",
			fmt.Sprintf("brand_id mismatch: request=%s brand=%s", req.BrandID, brand.BrandID))
	}

	// Local system time: today-or-future.
	if publishDate, err := req.Publish.Date(); err != nil {
		add("invalid_date", "publish.publish_date",
			fmt.Sprintf("publish.publish_date is not a valid date: %v", err))
	} else {
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
		if publishDate.Before(today) {
			add("past_publish_date", "publish.publish_date",
				"publish.publish_date must be today-or-future (local system time)")
		}
	}

	if !brand.SupportsDomain(req.Domain) {
		add("unsupported_domain", "domain",
			fmt.Sprintf("domain %s is not supported by brand; supported=%v", req.Domain, brand.DomainsSupported))
	}

	if !containsIntent(brand.ContentStrategy.AllowedIntents, req.Intent) {
		add("intent_not_allowed", "intent",
			fmt.Sprintf("intent %s not allowed by brand; allowed=%v", req.Intent, brand.ContentStrategy.AllowedIntents))
	}

	if req.IsProductForm() {
		if !containsForm(brand.ContentStrategy.AllowedProductRecommendationForms, req.Form) {
			add("form_not_allowed", "form",
				fmt.Sprintf("form %s not allowed for product intent; allowed=%v",
					req.Form, brand.ContentStrategy.AllowedProductRecommendationForms))
		}
	} else {
		if !containsForm(brand.ContentStrategy.AllowedThoughtLeadershipForms, req.Form) {
			add("form_not_allowed", "form",
				fmt.Sprintf("form %s not allowed for thought leadership; allowed=%v",
					req.Form, brand.ContentStrategy.AllowedThoughtLeadershipForms))
		}
	}

	// Topic allowlist-only: any explicit topic value must come from the
	// allowlist, for auto mode included.
	allowlist := make(map[string]bool, len(brand.TopicPolicy.Allowlist))
	for _, t := range brand.TopicPolicy.Allowlist {
		allowlist[t] = true
	}
	if len(allowlist) == 0 {
		add("empty_allowlist", "topic_policy.allowlist", "brand.topic_policy.allowlist must not be empty")
	} else if req.Topic.Value != "" || req.Topic.Mode == types.TopicModeManual {
		if !allowlist[req.Topic.Value] {
			add("topic_not_allowed", "topic.value", "topic.value must be in brand.topic_policy.allowlist")
		}
	}

	if !containsChannel(brand.DeliveryPolicy.DeliveryChannels, req.DeliveryTarget.Channel) {
		add("channel_not_allowed", "delivery_target.channel",
			fmt.Sprintf("delivery_target.channel %s not allowed by brand", req.DeliveryTarget.Channel))
	}
	if !containsDestination(brand.DeliveryPolicy.DeliveryDestinations, req.DeliveryTarget.Destination) {
		add("destination_not_allowed", "delivery_target.destination",
			fmt.Sprintf("delivery_target.destination %s not allowed by brand", req.DeliveryTarget.Destination))
	}

	// Products: manual links only, and only for product recommendation forms.
	if req.IsProductForm() {
		if req.Products.Mode != types.ProductsModeManualList {
			add("products_mode", "products.mode",
				"products.mode must be manual_list for product recommendation forms")
		}
	} else {
		if req.Products.Mode != types.ProductsModeNone {
			add("products_mode", "products.mode", "products.mode must be none for non-product forms")
		}
	}

	violations = append(violations, matrixViolations(brand, req, m)...)

	if len(violations) > 0 {
		return &ViolationError{Violations: violations}
	}
	return nil
}

// matrixViolations evaluates every applicable illegal-matrix relation for the
// brand/request combination.
func matrixViolations(brand *types.BrandProfile, req *types.ContentRequest, m *matrix.Matrix) []types.Violation {
	var violations []types.Violation

	disallow := func(relation, left, right string) {
		if m.Disallows(relation, left, right) {
			violations = append(violations, types.Violation{
				Type:     "illegal_matrix",
				Severity: "error",
				Relation: relation,
				Details:  fmt.Sprintf("illegal_matrix %s violation: %s x %s", relation, left, right),
			})
		}
	}

	formValue := string(req.Form)
	disallow(matrix.RelationIntentXForm, string(req.Intent), formValue)

	personaCfg, ok := brand.PersonaByDomain[req.Domain]
	if !ok {
		return violations
	}

	personaValue := string(personaCfg.PrimaryPersona)
	postureValue := string(brand.CommercialPolicy.CommercialPosture)
	depthValue := string(brand.ContentStrategy.DefaultContentDepth)
	channelValue := string(req.DeliveryTarget.Channel)
	destValue := string(req.DeliveryTarget.Destination)

	disallow(matrix.RelationPersonaXForm, personaValue, formValue)
	disallow(matrix.RelationPersonaXPosture, personaValue, postureValue)
	disallow(matrix.RelationDomainXPersona, string(req.Domain), personaValue)
	disallow(matrix.RelationDepthXChannel, depthValue, channelValue)
	disallow(matrix.RelationDestinationXPosture, destValue, postureValue)
	disallow(matrix.RelationDestinationXDepth, destValue, depthValue)

	for _, modifier := range personaCfg.PersonaModifiers {
		if modifier == types.ModifierNone {
			continue
		}
		disallow(matrix.RelationPersonaXModifier, personaValue, string(modifier))
	}

	return violations
}

func containsIntent(list []types.ContentIntent, v types.ContentIntent) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func containsForm(list []types.Form, v types.Form) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func containsChannel(list []types.DeliveryChannel, v types.DeliveryChannel) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func containsDestination(list []types.DeliveryDestination, v types.DeliveryDestination) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
