package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	domain "github.com/devyassinepro/ebay-importer/pkg/types"
)

// ImportsResponse wraps a paginated import history response.
type ImportsResponse struct {
	Imports []domain.ImportRecord `json:"imports"`
	Total   int                   `json:"total"`
	Limit   int                   `json:"limit"`
	Offset  int                   `json:"offset"`
}

// ListImportsParams defines query parameters for import history queries.
type ListImportsParams struct {
	Shop   string
	Status string
	Search string
	Limit  int
	Offset int
}

// CreateImport scrapes an eBay listing and creates the product on Shopify.
func (c *Client) CreateImport(
	ctx context.Context,
	shop, productURL, apiKey string,
) (*domain.ImportRecord, error) {
	body := map[string]string{
		"shop": shop,
		"url":  productURL,
	}
	if apiKey != "" {
		body["api_key"] = apiKey
	}

	var rec domain.ImportRecord
	if err := c.post(ctx, "/api/v1/imports", body, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListImports returns import records matching the given parameters.
func (c *Client) ListImports(
	ctx context.Context,
	params *ListImportsParams,
) (*ImportsResponse, error) {
	q := url.Values{}
	if params.Shop != "" {
		q.Set("shop", params.Shop)
	}
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}

	path := "/api/v1/imports"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp ImportsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetImport returns a single import record by ID.
func (c *Client) GetImport(ctx context.Context, id string) (*domain.ImportRecord, error) {
	var rec domain.ImportRecord
	if err := c.get(ctx, fmt.Sprintf("/api/v1/imports/%s", id), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// DeleteImport removes an import record, optionally deleting the Shopify
// product it created.
func (c *Client) DeleteImport(ctx context.Context, id string, removeFromShopify bool) error {
	path := fmt.Sprintf("/api/v1/imports/%s", id)
	if removeFromShopify {
		path += "?remove_from_shopify=true"
	}
	return c.del(ctx, path, nil)
}

// BulkDeleteImports removes multiple import records and returns how many
// rows were deleted.
func (c *Client) BulkDeleteImports(ctx context.Context, ids []string) (int64, error) {
	body := map[string][]string{"ids": ids}

	var resp struct {
		Deleted int64 `json:"deleted"`
	}
	if err := c.post(ctx, "/api/v1/imports/bulk-delete", body, &resp); err != nil {
		return 0, err
	}
	return resp.Deleted, nil
}
