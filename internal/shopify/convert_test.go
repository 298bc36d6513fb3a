package shopify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devyassinepro/ebay-importer/internal/shopify"
	"github.com/devyassinepro/ebay-importer/pkg/types"
)

func scrapedShirt() *types.ScrapedProduct {
	return &types.ScrapedProduct{
		ItemID:      "234567890123",
		Title:       "Cotton Shirt",
		Description: "A shirt.\nMachine washable.",
		Price:       20,
		Currency:    "USD",
		Images: []string{
			"https://i.ebayimg.com/images/g/a/s-l1600.jpg",
			"https://i.ebayimg.com/images/g/b/s-l1600.jpg",
		},
		Options: []types.ProductOption{
			{Name: "Color", Values: []string{"Black", "Pink"}},
			{Name: "Size", Values: []string{"S", "M"}},
		},
		Variants: []types.ProductVariant{
			{Options: map[string]string{"Color": "Black", "Size": "S"}, Available: true, Price: 20},
			{Options: map[string]string{"Color": "Black", "Size": "M"}, Available: true, Price: 20},
			{Options: map[string]string{"Color": "Pink", "Size": "S"}, Available: true, Price: 20},
			{Options: map[string]string{"Color": "Pink", "Size": "M"}, Available: true, Price: 20},
		},
		Categories: []string{"Clothing", "Shirts"},
	}
}

func TestToProductInput_FullProduct(t *testing.T) {
	t.Parallel()

	settings := &types.ShopSettings{
		Shop:           "example.myshopify.com",
		Pricing:        types.PricingRule{Type: types.MarkupPercent, Amount: 50},
		DefaultStatus:  types.ProductActive,
		ImportImages:   true,
		ImportVariants: true,
	}

	got := shopify.ToProductInput(scrapedShirt(), settings)

	assert.Equal(t, "Cotton Shirt", got.Title)
	assert.Equal(t, "ACTIVE", got.Status)
	assert.Equal(t, []string{"Clothing", "Shirts"}, got.Tags)
	assert.Contains(t, got.DescriptionHTML, "<p>A shirt.</p>")
	assert.Contains(t, got.DescriptionHTML, "<p>Machine washable.</p>")

	require.Len(t, got.Images, 2)
	assert.Equal(t, "https://i.ebayimg.com/images/g/a/s-l1600.jpg", got.Images[0].Src)

	assert.Equal(t, []string{"Color", "Size"}, got.Options)
	require.Len(t, got.Variants, 4)

	// Marked-up 50%: 20 -> 30. Option values follow option order.
	assert.Equal(t, "30.00", got.Variants[0].Price)
	assert.Equal(t, []string{"Black", "S"}, got.Variants[0].Options)
	assert.Equal(t, []string{"Pink", "M"}, got.Variants[3].Options)
}

func TestToProductInput_SingleSKU(t *testing.T) {
	t.Parallel()

	p := scrapedShirt()
	p.Options = nil
	p.Variants = nil

	settings := types.DefaultSettings("example.myshopify.com")
	got := shopify.ToProductInput(p, settings)

	assert.Empty(t, got.Options)
	require.Len(t, got.Variants, 1)
	assert.Equal(t, "20.00", got.Variants[0].Price)
	assert.Equal(t, "234567890123", got.Variants[0].SKU)
}

func TestToProductInput_SettingsFlags(t *testing.T) {
	t.Parallel()

	settings := &types.ShopSettings{
		Shop:           "example.myshopify.com",
		DefaultStatus:  types.ProductDraft,
		ImportImages:   false,
		ImportVariants: false,
	}

	got := shopify.ToProductInput(scrapedShirt(), settings)

	assert.Empty(t, got.Images)
	assert.Empty(t, got.Options)
	require.Len(t, got.Variants, 1)
	assert.Equal(t, "DRAFT", got.Status)
}

func TestToProductInput_BulletPointsRendered(t *testing.T) {
	t.Parallel()

	p := scrapedShirt()
	p.BulletPoints = []string{"Brand: Generic", "Material: Cotton"}

	got := shopify.ToProductInput(p, types.DefaultSettings("s"))
	assert.Contains(t, got.DescriptionHTML, "<li>Brand: Generic</li>")
	assert.Contains(t, got.DescriptionHTML, "<li>Material: Cotton</li>")
}
