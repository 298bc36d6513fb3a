// Package shopify provides a minimal Shopify Admin GraphQL client covering
// the product operations the importer needs, abstracted behind an interface
// for testability.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/devyassinepro/ebay-importer/internal/metrics"
)

const defaultAPIVersion = "2024-01"

// AdminClient is the interface the import workflow depends on.
type AdminClient interface {
	CreateProduct(ctx context.Context, input ProductInput) (*Product, error)
	GetProductVariants(ctx context.Context, productID string) ([]Variant, error)
	UpdateVariantPrice(ctx context.Context, variantID, price string) (*Variant, error)
	DeleteProduct(ctx context.Context, productID string) error
}

// Client talks to one shop's Admin GraphQL endpoint.
type Client struct {
	shop       string
	token      string
	apiVersion string
	endpoint   string
	client     *http.Client
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithAPIVersion overrides the default Admin API version.
func WithAPIVersion(v string) ClientOption {
	return func(c *Client) {
		c.apiVersion = v
	}
}

// WithEndpoint overrides the computed GraphQL endpoint URL.
func WithEndpoint(u string) ClientOption {
	return func(c *Client) {
		c.endpoint = u
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.client = hc
	}
}

// NewClient creates an Admin API client for the given shop domain
// (example.myshopify.com) and access token.
func NewClient(shop, token string, opts ...ClientOption) *Client {
	c := &Client{
		shop:       shop,
		token:      token,
		apiVersion: defaultAPIVersion,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.endpoint == "" {
		c.endpoint = fmt.Sprintf(
			"https://%s/admin/api/%s/graphql.json",
			c.shop, c.apiVersion,
		)
	}
	return c
}

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

type gqlError struct {
	Message string `json:"message"`
}

// do executes one GraphQL operation and unmarshals the data payload into out.
func (c *Client) do(
	ctx context.Context,
	operation, query string,
	variables map[string]any,
	out any,
) error {
	payload, err := json.Marshal(gqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("encoding GraphQL request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.endpoint,
		bytes.NewReader(payload),
	)
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.token)

	metrics.ShopifyCallsTotal.WithLabelValues(operation).Inc()

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.ShopifyErrorsTotal.Inc()
		return fmt.Errorf("executing %s request: %w", operation, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.ShopifyErrorsTotal.Inc()
		return fmt.Errorf(
			"Shopify API error (status %d): %s",
			resp.StatusCode,
			string(body),
		)
	}

	var gqlResp gqlResponse
	if err := json.Unmarshal(body, &gqlResp); err != nil {
		return fmt.Errorf("parsing %s response: %w", operation, err)
	}

	if len(gqlResp.Errors) > 0 {
		metrics.ShopifyErrorsTotal.Inc()
		msgs := make([]string, 0, len(gqlResp.Errors))
		for _, e := range gqlResp.Errors {
			msgs = append(msgs, e.Message)
		}
		return fmt.Errorf("%s failed: %s", operation, strings.Join(msgs, "; "))
	}

	if out != nil {
		if err := json.Unmarshal(gqlResp.Data, out); err != nil {
			return fmt.Errorf("parsing %s data: %w", operation, err)
		}
	}

	return nil
}

func userErrorMessages(errs []UserError) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

const productCreateQuery = `
mutation productCreate($input: ProductInput!) {
  productCreate(input: $input) {
    product { id title status }
    userErrors { field message }
  }
}`

// CreateProduct creates a product with its options, variants, and images.
func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (*Product, error) {
	var data struct {
		ProductCreate struct {
			Product    *Product    `json:"product"`
			UserErrors []UserError `json:"userErrors"`
		} `json:"productCreate"`
	}

	if err := c.do(ctx, "productCreate", productCreateQuery,
		map[string]any{"input": input}, &data); err != nil {
		return nil, err
	}

	if len(data.ProductCreate.UserErrors) > 0 {
		metrics.ShopifyErrorsTotal.Inc()
		return nil, fmt.Errorf(
			"productCreate rejected: %s",
			userErrorMessages(data.ProductCreate.UserErrors),
		)
	}

	if data.ProductCreate.Product == nil {
		return nil, fmt.Errorf("productCreate returned no product")
	}

	return data.ProductCreate.Product, nil
}

const productVariantsQuery = `
query productVariants($id: ID!) {
  product(id: $id) {
    variants(first: 100) {
      nodes { id price }
    }
  }
}`

// GetProductVariants lists a product's variants (first 100).
func (c *Client) GetProductVariants(ctx context.Context, productID string) ([]Variant, error) {
	var data struct {
		Product *struct {
			Variants struct {
				Nodes []Variant `json:"nodes"`
			} `json:"variants"`
		} `json:"product"`
	}

	if err := c.do(ctx, "productVariants", productVariantsQuery,
		map[string]any{"id": productID}, &data); err != nil {
		return nil, err
	}

	if data.Product == nil {
		return nil, fmt.Errorf("product %s not found", productID)
	}

	return data.Product.Variants.Nodes, nil
}

const variantUpdateQuery = `
mutation productVariantUpdate($input: ProductVariantInput!) {
  productVariantUpdate(input: $input) {
    productVariant { id price }
    userErrors { field message }
  }
}`

// UpdateVariantPrice sets a single variant's price.
func (c *Client) UpdateVariantPrice(
	ctx context.Context,
	variantID, price string,
) (*Variant, error) {
	var data struct {
		ProductVariantUpdate struct {
			ProductVariant *Variant    `json:"productVariant"`
			UserErrors     []UserError `json:"userErrors"`
		} `json:"productVariantUpdate"`
	}

	input := map[string]any{"id": variantID, "price": price}
	if err := c.do(ctx, "productVariantUpdate", variantUpdateQuery,
		map[string]any{"input": input}, &data); err != nil {
		return nil, err
	}

	if len(data.ProductVariantUpdate.UserErrors) > 0 {
		metrics.ShopifyErrorsTotal.Inc()
		return nil, fmt.Errorf(
			"productVariantUpdate rejected: %s",
			userErrorMessages(data.ProductVariantUpdate.UserErrors),
		)
	}

	return data.ProductVariantUpdate.ProductVariant, nil
}

const productDeleteQuery = `
mutation productDelete($input: ProductDeleteInput!) {
  productDelete(input: $input) {
    deletedProductId
    userErrors { field message }
  }
}`

// DeleteProduct removes a product from the shop.
func (c *Client) DeleteProduct(ctx context.Context, productID string) error {
	var data struct {
		ProductDelete struct {
			DeletedProductID *string     `json:"deletedProductId"`
			UserErrors       []UserError `json:"userErrors"`
		} `json:"productDelete"`
	}

	if err := c.do(ctx, "productDelete", productDeleteQuery,
		map[string]any{"input": map[string]any{"id": productID}}, &data); err != nil {
		return err
	}

	if len(data.ProductDelete.UserErrors) > 0 {
		metrics.ShopifyErrorsTotal.Inc()
		return fmt.Errorf(
			"productDelete rejected: %s",
			userErrorMessages(data.ProductDelete.UserErrors),
		)
	}

	return nil
}
