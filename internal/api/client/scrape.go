package client

import (
	"context"
	"time"

	"github.com/devyassinepro/ebay-importer/internal/scraper"
)

// Scrape previews an eBay listing without importing it. Scrape failures come
// back inside the Result, not as a transport error.
func (c *Client) Scrape(ctx context.Context, productURL, apiKey string) (*scraper.Result, error) {
	body := map[string]string{"url": productURL}
	if apiKey != "" {
		body["api_key"] = apiKey
	}

	var res scraper.Result
	if err := c.post(ctx, "/api/v1/scrape", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Quota reports the current scraping API quota status.
type Quota struct {
	DailyLimit int64     `json:"daily_limit"`
	DailyUsed  int64     `json:"daily_used"`
	Remaining  int64     `json:"remaining"`
	ResetAt    time.Time `json:"reset_at"`
}

// GetQuota returns the current daily scraping call usage and window reset time.
func (c *Client) GetQuota(ctx context.Context) (*Quota, error) {
	var q Quota
	if err := c.get(ctx, "/api/v1/quota", &q); err != nil {
		return nil, err
	}
	return &q, nil
}
