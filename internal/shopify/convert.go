package shopify

import (
	"strconv"
	"strings"

	"github.com/devyassinepro/ebay-importer/pkg/types"
)

// ToProductInput maps a scraped product and the shop's settings into a
// productCreate payload. The pricing rule is applied to the base price and
// every variant price.
func ToProductInput(p *types.ScrapedProduct, settings *types.ShopSettings) ProductInput {
	input := ProductInput{
		Title:           p.Title,
		DescriptionHTML: descriptionHTML(p),
		Vendor:          "eBay Import",
		Status:          strings.ToUpper(string(settings.DefaultStatus)),
		Tags:            p.Categories,
	}

	if settings.ImportImages {
		input.Images = make([]ImageInput, 0, len(p.Images))
		for _, img := range p.Images {
			input.Images = append(input.Images, ImageInput{Src: img})
		}
	}

	if settings.ImportVariants && len(p.Options) > 0 {
		input.Options = make([]string, 0, len(p.Options))
		for _, opt := range p.Options {
			input.Options = append(input.Options, opt.Name)
		}
		input.Variants = toVariantInputs(p, settings.Pricing)
		return input
	}

	// Single-SKU product: one variant carrying the adjusted base price.
	input.Variants = []VariantInput{{
		Price: FormatPrice(settings.Pricing.Apply(p.Price)),
		SKU:   p.ItemID,
	}}

	return input
}

func toVariantInputs(p *types.ScrapedProduct, pricing types.PricingRule) []VariantInput {
	variants := make([]VariantInput, 0, len(p.Variants))
	for _, v := range p.Variants {
		// Option values in product option order, matching the Options list.
		selected := make([]string, 0, len(p.Options))
		for _, opt := range p.Options {
			selected = append(selected, v.Options[opt.Name])
		}
		variants = append(variants, VariantInput{
			Price:   FormatPrice(pricing.Apply(v.Price)),
			Options: selected,
			SKU:     v.ItemID,
		})
	}
	return variants
}

// descriptionHTML wraps the plain-text description in paragraphs and
// appends the specification table when present.
func descriptionHTML(p *types.ScrapedProduct) string {
	var b strings.Builder

	for _, line := range strings.Split(p.Description, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(line)
		b.WriteString("</p>")
	}

	if len(p.BulletPoints) > 0 {
		b.WriteString("<ul>")
		for _, bp := range p.BulletPoints {
			b.WriteString("<li>")
			b.WriteString(bp)
			b.WriteString("</li>")
		}
		b.WriteString("</ul>")
	}

	return b.String()
}

// FormatPrice renders a price the way the Admin API expects: a decimal
// string with two fraction digits.
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64)
}
