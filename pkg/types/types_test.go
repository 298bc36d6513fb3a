package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devyassinepro/ebay-importer/pkg/types"
)

func TestPricingRule_Apply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rule  types.PricingRule
		price float64
		want  float64
	}{
		{
			name:  "percent markup",
			rule:  types.PricingRule{Type: types.MarkupPercent, Amount: 20},
			price: 10.00,
			want:  12.00,
		},
		{
			name:  "percent markup rounds to cents",
			rule:  types.PricingRule{Type: types.MarkupPercent, Amount: 15},
			price: 19.99,
			want:  22.99,
		},
		{
			name:  "fixed markup",
			rule:  types.PricingRule{Type: types.MarkupFixed, Amount: 5.50},
			price: 10.00,
			want:  15.50,
		},
		{
			name:  "negative fixed markup clamps at zero",
			rule:  types.PricingRule{Type: types.MarkupFixed, Amount: -20},
			price: 10.00,
			want:  0,
		},
		{
			name:  "zero-value rule passes through",
			rule:  types.PricingRule{},
			price: 49.95,
			want:  49.95,
		},
		{
			name:  "zero percent passes through",
			rule:  types.PricingRule{Type: types.MarkupPercent, Amount: 0},
			price: 49.95,
			want:  49.95,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, tt.rule.Apply(tt.price), 0.001)
		})
	}
}

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	s := types.DefaultSettings("example.myshopify.com")
	assert.Equal(t, "example.myshopify.com", s.Shop)
	assert.Equal(t, types.ProductDraft, s.DefaultStatus)
	assert.True(t, s.ImportImages)
	assert.True(t, s.ImportVariants)
	assert.Equal(t, types.MarkupPercent, s.Pricing.Type)
	assert.Zero(t, s.Pricing.Amount)
}
