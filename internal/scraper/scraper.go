// Package scraper turns an eBay product URL into a normalized product
// record. The pipeline is stateless: validate the URL, fetch the raw page
// data through a third-party scraping API, validate the response envelope,
// normalize the body, and expand option combinations into variants.
package scraper

import (
	"context"
	"errors"

	"github.com/devyassinepro/ebay-importer/internal/metrics"
	"github.com/devyassinepro/ebay-importer/pkg/types"
)

// ProductScraper is the interface the import workflow depends on.
type ProductScraper interface {
	Scrape(ctx context.Context, productURL, apiKey string) (*types.ScrapedProduct, error)
}

// Scraper runs the scrape pipeline against a scraping service client.
type Scraper struct {
	client *Client
}

// New creates a Scraper backed by the given client.
func New(client *Client) *Scraper {
	return &Scraper{client: client}
}

// Scrape fetches and normalizes a single eBay listing. apiKey may be empty,
// in which case the client falls back to its configured credential or the
// process environment. All failures are either a typed *Error or a
// transport error carrying its underlying message.
func (s *Scraper) Scrape(
	ctx context.Context,
	productURL, apiKey string,
) (*types.ScrapedProduct, error) {
	itemID, err := ExtractItemID(productURL)
	if err != nil {
		countFailure(err)
		return nil, err
	}

	env, err := s.client.Fetch(ctx, productURL, apiKey)
	if err != nil {
		countFailure(err)
		return nil, err
	}

	body, err := validateEnvelope(env)
	if err != nil {
		countFailure(err)
		return nil, err
	}

	return normalize(body, itemID, productURL), nil
}

func countFailure(err error) {
	var se *Error
	if errors.As(err, &se) {
		metrics.ScrapeFailuresTotal.WithLabelValues(string(se.Kind)).Inc()
		return
	}
	metrics.ScrapeFailuresTotal.WithLabelValues("TRANSPORT").Inc()
}

// Result is the tagged success-or-error shape returned across the API and
// CLI boundaries. No error ever crosses those boundaries as anything else.
type Result struct {
	Success bool                  `json:"success"`
	Data    *types.ScrapedProduct `json:"data,omitempty"`
	Error   string                `json:"error,omitempty"`
}

// ResultOf converts a (product, error) pair into the tagged shape.
func ResultOf(p *types.ScrapedProduct, err error) Result {
	if err != nil {
		return Result{Success: false, Error: err.Error()}
	}
	return Result{Success: true, Data: p}
}
