// Package types provides type definitions for structured data used throughout the content-factory system.
package types

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Publish carries the requested publish date.
type Publish struct {
	PublishDate string `yaml:"publish_date" json:"publish_date" validate:"required,datetime=2006-01-02"`
}

// Date parses the publish date. The document is validated with a datetime tag
// first, so parsing here only fails for documents that bypassed validation.
func (p Publish) Date() (time.Time, error) {
	return time.ParseInLocation("2006-01-02", p.PublishDate, time.Local)
}

// Topic selects the piece's subject, either manually or automatically.
type Topic struct {
	Mode  TopicMode `yaml:"mode" json:"mode" validate:"required"`
	Value string    `yaml:"value,omitempty" json:"value,omitempty"`
}

// DeliveryTarget is the (destination, channel) pair a piece ships to.
type DeliveryTarget struct {
	Destination DeliveryDestination `yaml:"destination" json:"destination" validate:"required"`
	Channel     DeliveryChannel     `yaml:"channel" json:"channel" validate:"required"`
}

// ProductItem is one manually supplied product pick.
type ProductItem struct {
	PickID       string  `yaml:"pick_id" json:"pick_id" validate:"required"`
	Title        string  `yaml:"title" json:"title" validate:"required"`
	URL          string  `yaml:"url" json:"url" validate:"required,url"`
	Rating       float64 `yaml:"rating,omitempty" json:"rating,omitempty"`
	ReviewsCount int     `yaml:"reviews_count,omitempty" json:"reviews_count,omitempty"`
	Provider     string  `yaml:"provider,omitempty" json:"provider,omitempty"`
}

// Products declares how the request sources its product list.
type Products struct {
	Mode  ProductsMode  `yaml:"mode" json:"mode" validate:"required"`
	Items []ProductItem `yaml:"items" json:"items" validate:"dive"`
}

// RequestOverrides carries optional presentation overrides applied only by
// the blog adapter.
type RequestOverrides struct {
	Title       string   `yaml:"title,omitempty" json:"title,omitempty"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Categories  []string `yaml:"categories,omitempty" json:"categories,omitempty"`
	Audience    string   `yaml:"audience,omitempty" json:"audience,omitempty"`
}

// ContentRequest is the declarative description of one piece of content.
type ContentRequest struct {
	BrandID string  `yaml:"brand_id" json:"brand_id" validate:"required"`
	Publish Publish `yaml:"publish" json:"publish" validate:"required"`

	Intent ContentIntent `yaml:"intent" json:"intent" validate:"required"`
	Form   Form          `yaml:"form" json:"form" validate:"required"`
	Domain Domain        `yaml:"domain" json:"domain" validate:"required"`

	Topic          Topic          `yaml:"topic" json:"topic" validate:"required"`
	DeliveryTarget DeliveryTarget `yaml:"delivery_target" json:"delivery_target" validate:"required"`
	Products       Products       `yaml:"products" json:"products" validate:"required"`

	Overrides *RequestOverrides `yaml:"overrides,omitempty" json:"overrides,omitempty"`
}

// IsProductForm reports whether the request's form is drawn from the
// product-recommendation form set.
func (r *ContentRequest) IsProductForm() bool {
	return r.Form.IsProduct()
}

// Validate checks the request's internal shape. Cross-checks against the
// owning brand profile live in the policy package.
func (r *ContentRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return &SchemaError{Message: "content request failed structural validation", Cause: err}
	}

	if r.Topic.Mode == TopicModeManual && strings.TrimSpace(r.Topic.Value) == "" {
		return &SchemaError{Message: "topic.value is required when topic.mode=manual"}
	}
	r.Topic.Value = strings.TrimSpace(r.Topic.Value)

	switch r.Products.Mode {
	case ProductsModeNone:
		if len(r.Products.Items) > 0 {
			return &SchemaError{Message: "products.items must be empty when products.mode=none"}
		}
	case ProductsModeManualList:
		if len(r.Products.Items) == 0 {
			return &SchemaError{Message: "products.items must not be empty when products.mode=manual_list"}
		}
	}

	return nil
}
