package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/devyassinepro/ebay-importer/internal/metrics"
)

const (
	defaultEndpoint = "https://ebay-product-scraper.p.rapidapi.com/product"
	defaultAPIHost  = "ebay-product-scraper.p.rapidapi.com"

	// APIKeyEnv is the process-wide fallback credential source.
	APIKeyEnv = "SCRAPER_API_KEY"

	requestTimeout = 30 * time.Second
)

// Client issues credentialed requests against the third-party scraping
// service. One outbound POST per Fetch call, no retries; cancellation is
// the fixed 30-second client timeout.
type Client struct {
	endpoint string
	apiHost  string
	apiKey   string
	client   *http.Client
	limiter  *RateLimiter
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithEndpoint overrides the default scraping service endpoint.
func WithEndpoint(u string) ClientOption {
	return func(c *Client) {
		c.endpoint = u
	}
}

// WithAPIHost overrides the routing host header value.
func WithAPIHost(h string) ClientOption {
	return func(c *Client) {
		c.apiHost = h
	}
}

// WithAPIKey sets the configured fallback credential, used when the caller
// does not pass one explicitly.
func WithAPIKey(k string) ClientOption {
	return func(c *Client) {
		c.apiKey = k
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.client = hc
	}
}

// WithRateLimiter injects a limiter guarding the scraping plan's quota.
// When set, every Fetch() call goes through Wait() first.
func WithRateLimiter(r *RateLimiter) ClientOption {
	return func(c *Client) {
		c.limiter = r
	}
}

// NewClient creates a new scraping service client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		endpoint: defaultEndpoint,
		apiHost:  defaultAPIHost,
		client:   &http.Client{Timeout: requestTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type fetchRequest struct {
	URL string `json:"url"`
}

// Fetch posts the product URL to the scraping service and returns the raw
// response envelope. The credential check runs before any network call:
// explicit key, then the configured key, then the process environment.
func (c *Client) Fetch(ctx context.Context, productURL, apiKey string) (*envelope, error) {
	key := c.resolveKey(apiKey)
	if key == "" {
		return nil, newError(
			KindAPIKeyMissing,
			"no scraping API key: pass one explicitly or set %s", APIKeyEnv,
		)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrQuotaExhausted) {
				metrics.ScrapeQuotaHits.Inc()
			}
			return nil, fmt.Errorf("rate limit: %w", err)
		}
		metrics.ScrapeDailyUsage.Set(float64(c.limiter.DailyCount()))
	}

	payload, err := json.Marshal(fetchRequest{URL: productURL})
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.endpoint,
		bytes.NewReader(payload),
	)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-rapidapi-host", c.apiHost)
	req.Header.Set("x-rapidapi-key", key)

	metrics.ScrapeCallsTotal.Inc()
	start := time.Now()

	resp, err := c.client.Do(req)
	if err != nil {
		// Transport errors keep their underlying message text.
		return nil, fmt.Errorf("executing scrape request: %w", err)
	}
	defer resp.Body.Close()

	metrics.ScrapeDuration.Observe(time.Since(start).Seconds())

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"scraping service error (status %d): %s",
			resp.StatusCode,
			string(body),
		)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("parsing scrape response: %w", err)
	}

	return &env, nil
}

func (c *Client) resolveKey(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if c.apiKey != "" {
		return c.apiKey
	}
	return os.Getenv(APIKeyEnv)
}
