package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContentRequest() *ContentRequest {
	return &ContentRequest{
		BrandID: "acme-living",
		Publish: Publish{PublishDate: "2026-10-01"},
		Intent:  IntentThoughtLeadership,
		Form:    FormCoreInsightEssay,
		Domain:  DomainHome,
		Topic:   Topic{Mode: TopicModeManual, Value: "home organization"},
		DeliveryTarget: DeliveryTarget{
			Destination: DestinationClientWebsite,
			Channel:     ChannelBlogArticle,
		},
		Products: Products{Mode: ProductsModeNone},
	}
}

func TestContentRequestValidate_ValidRequest(t *testing.T) {
	req := validContentRequest()
	assert.NoError(t, req.Validate())
}

func TestContentRequestValidate_ManualTopicNeedsValue(t *testing.T) {
	req := validContentRequest()
	req.Topic.Value = "   "

	err := req.Validate()
	require.Error(t, err)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, err.Error(), "topic.value is required when topic.mode=manual")
}

func TestContentRequestValidate_AutoTopicValueOptional(t *testing.T) {
	req := validContentRequest()
	req.Topic = Topic{Mode: TopicModeAuto}
	assert.NoError(t, req.Validate())
}

func TestContentRequestValidate_TopicValueTrimmed(t *testing.T) {
	req := validContentRequest()
	req.Topic.Value = "  home organization  "

	require.NoError(t, req.Validate())
	assert.Equal(t, "home organization", req.Topic.Value)
}

func TestContentRequestValidate_ProductsModeConsistency(t *testing.T) {
	req := validContentRequest()
	req.Products = Products{
		Mode: ProductsModeNone,
		Items: []ProductItem{
			{PickID: "pick-1", Title: "Shelf Organizer", URL: "https://shop.example.com/shelf"},
		},
	}
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "products.items must be empty when products.mode=none")

	req = validContentRequest()
	req.Intent = IntentProductRecommendation
	req.Form = FormTopXList
	req.Products = Products{Mode: ProductsModeManualList}
	err = req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "products.items must not be empty when products.mode=manual_list")
}

func TestContentRequestValidate_BadPublishDateRejected(t *testing.T) {
	req := validContentRequest()
	req.Publish.PublishDate = "01/10/2026"

	err := req.Validate()
	require.Error(t, err)

	var schemaErr *SchemaError
	assert.ErrorAs(t, err, &schemaErr)
}

func TestPublish_Date(t *testing.T) {
	p := Publish{PublishDate: "2026-10-01"}
	got, err := p.Date()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.October, 1, 0, 0, 0, 0, time.Local), got)
}

func TestContentRequest_IsProductForm(t *testing.T) {
	req := validContentRequest()
	assert.False(t, req.IsProductForm())

	req.Form = FormComparisonTable
	assert.True(t, req.IsProductForm())
}
