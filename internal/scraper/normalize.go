package scraper

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/devyassinepro/ebay-importer/pkg/types"
)

const (
	defaultCurrency    = "USD"
	fallbackDesc       = "No description available"
	fallbackAvail      = "Available"
	fullResolutionSize = "1600"
)

// thumbPattern matches eBay's sized-thumbnail path segment, e.g. /s-l500.jpg.
var thumbPattern = regexp.MustCompile(`/s-l\d+\.jpg`)

// normalize maps a validated raw body into the fixed product schema. Pure:
// identical input always yields identical output, including variant order.
func normalize(body *rawBody, itemID, sourceURL string) *types.ScrapedProduct {
	p := &types.ScrapedProduct{
		ItemID:       itemID,
		Title:        body.Title,
		SourceURL:    sourceURL,
		Currency:     defaultCurrency,
		Images:       normalizeImages(body),
		Description:  normalizeDescription(body),
		Categories:   categories(body.Breadcrumbs),
		Availability: availability(body),
	}

	if body.Price != nil {
		p.Price = body.Price.Value
		if body.Price.Currency != "" {
			p.Currency = body.Price.Currency
		}
	}

	if len(body.ProductInformation) > 0 {
		p.Specifications = make(map[string]string, len(body.ProductInformation))
		p.BulletPoints = make([]string, 0, len(body.ProductInformation))
		for _, nv := range body.ProductInformation {
			p.Specifications[nv.Name] = nv.Value
			p.BulletPoints = append(p.BulletPoints, nv.Name+": "+nv.Value)
		}
	}

	if r, ok := body.Rating.float(); ok {
		p.Rating = &r
	}
	if n, ok := body.RatingsTotal.int(); ok {
		p.RatingsTotal = &n
	}

	p.Options = parseOptions(body.Options)
	p.Variants = expandVariants(p.Options, p.Price)

	return p
}

// normalizeImages keeps only absolute http(s) URLs and rewrites sized
// thumbnails to the highest available resolution. Falls back to the main
// image, then to an empty list.
func normalizeImages(body *rawBody) []string {
	if len(body.Images) > 0 {
		images := make([]string, 0, len(body.Images))
		for _, img := range body.Images {
			if !strings.HasPrefix(img, "http://") && !strings.HasPrefix(img, "https://") {
				continue
			}
			images = append(images, upscaleThumbnail(img))
		}
		return images
	}

	if body.MainImage != "" {
		return []string{body.MainImage}
	}

	return []string{}
}

func upscaleThumbnail(u string) string {
	return thumbPattern.ReplaceAllString(u, "/s-l"+fullResolutionSize+".jpg")
}

// normalizeDescription prefers the explicit description (stripped of HTML
// markup), then a synthesized one from product information, then a literal
// fallback.
func normalizeDescription(body *rawBody) string {
	if desc := strings.TrimSpace(body.Description); desc != "" {
		return stripHTML(desc)
	}

	if len(body.ProductInformation) > 0 {
		lines := make([]string, 0, len(body.ProductInformation))
		for _, nv := range body.ProductInformation {
			lines = append(lines, nv.Name+": "+nv.Value)
		}
		return strings.Join(lines, "\n")
	}

	return fallbackDesc
}

// stripHTML reduces an HTML fragment to its text content. Non-HTML input
// passes through unchanged.
func stripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	text := strings.TrimSpace(doc.Text())
	if text == "" {
		return s
	}
	return text
}

func categories(crumbs []rawCrumb) []string {
	names := make([]string, 0, len(crumbs))
	for _, c := range crumbs {
		names = append(names, c.Name)
	}
	return names
}

func availability(body *rawBody) string {
	if body.AvailableQuantity != nil {
		return fmt.Sprintf("%d available", *body.AvailableQuantity)
	}
	if body.Condition != "" {
		return body.Condition
	}
	return fallbackAvail
}
