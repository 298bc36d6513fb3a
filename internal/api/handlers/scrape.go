package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/devyassinepro/ebay-importer/internal/scraper"
)

// ScrapeHandler provides the scrape preview endpoint.
type ScrapeHandler struct {
	scraper scraper.ProductScraper
}

// NewScrapeHandler creates a new ScrapeHandler.
func NewScrapeHandler(sc scraper.ProductScraper) *ScrapeHandler {
	return &ScrapeHandler{scraper: sc}
}

// ScrapeInput is the request body for a scrape preview.
type ScrapeInput struct {
	Body struct {
		URL    string `json:"url"               doc:"eBay listing URL" example:"https://www.ebay.com/itm/195554443332"`
		APIKey string `json:"api_key,omitempty" doc:"Optional scraping API key override" required:"false"`
	}
}

// ScrapeOutput is the tagged scrape result. Scrape failures are part of the
// normal response shape, not HTTP errors; the endpoint answers 200 either way.
type ScrapeOutput struct {
	Body scraper.Result
}

// Scrape fetches and normalizes a listing without importing it.
func (h *ScrapeHandler) Scrape(ctx context.Context, input *ScrapeInput) (*ScrapeOutput, error) {
	product, err := h.scraper.Scrape(ctx, input.Body.URL, input.Body.APIKey)
	return &ScrapeOutput{Body: scraper.ResultOf(product, err)}, nil
}

// RegisterScrapeRoutes registers the scrape preview endpoint with the Huma API.
func RegisterScrapeRoutes(api huma.API, h *ScrapeHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "scrape-product",
		Method:      http.MethodPost,
		Path:        "/api/v1/scrape",
		Summary:     "Preview a scraped listing",
		Description: "Scrapes and normalizes an eBay listing without creating anything in Shopify.",
		Tags:        []string{"scrape"},
	}, h.Scrape)
}
