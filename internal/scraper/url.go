package scraper

import (
	"regexp"
	"strings"
)

var itemIDPattern = regexp.MustCompile(`(?i)/itm/(\d+)`)

// ExtractItemID validates an eBay product URL and returns its numeric item
// identifier. The URL must carry an eBay domain marker and an /itm/<digits>
// path segment; anything else is ErrInvalidURL.
func ExtractItemID(rawURL string) (string, error) {
	if !strings.Contains(strings.ToLower(rawURL), "ebay.") {
		return "", newError(KindInvalidURL, "not an eBay product URL: %q", rawURL)
	}

	m := itemIDPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", newError(KindInvalidURL, "no item ID found in URL: %q", rawURL)
	}

	return m[1], nil
}
