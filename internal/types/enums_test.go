package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEnumDecode_KnownValues(t *testing.T) {
	var intent ContentIntent
	err := yaml.Unmarshal([]byte(`thought_leadership`), &intent)
	require.NoError(t, err)
	assert.Equal(t, IntentThoughtLeadership, intent)

	var domain Domain
	err = yaml.Unmarshal([]byte(`pets`), &domain)
	require.NoError(t, err)
	assert.Equal(t, DomainPets, domain)

	var channel DeliveryChannel
	err = yaml.Unmarshal([]byte(`social_longform`), &channel)
	require.NoError(t, err)
	assert.Equal(t, ChannelSocialLongform, channel)
}

func TestEnumDecode_UnknownValueRejectedAtParseTime(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
		into  func() error
	}{
		{
			name: "unknown intent",
			into: func() error {
				var v ContentIntent
				return yaml.Unmarshal([]byte(`growth_hacking`), &v)
			},
		},
		{
			name: "unknown domain",
			into: func() error {
				var v Domain
				return yaml.Unmarshal([]byte(`crypto`), &v)
			},
		},
		{
			name: "unknown persona",
			into: func() error {
				var v Persona
				return yaml.Unmarshal([]byte(`wacky_uncle`), &v)
			},
		},
		{
			name: "unknown disclaimer location",
			into: func() error {
				var v DisclaimerLocation
				return yaml.Unmarshal([]byte(`sidebar`), &v)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.into()
			require.Error(t, err)

			var schemaErr *SchemaError
			assert.ErrorAs(t, err, &schemaErr)
		})
	}
}

func TestEnumDecode_ErrorNamesOffendingValue(t *testing.T) {
	var form Form
	err := yaml.Unmarshal([]byte(`listicle_supreme`), &form)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listicle_supreme")
}

func TestForm_IsProduct(t *testing.T) {
	assert.True(t, FormTopXList.IsProduct())
	assert.True(t, FormBuyerGuide.IsProduct())
	assert.False(t, FormCoreInsightEssay.IsProduct())
	assert.False(t, FormContrarianTake.IsProduct())
}
