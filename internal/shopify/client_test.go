package shopify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devyassinepro/ebay-importer/internal/shopify"
)

func newClient(t *testing.T, handler http.HandlerFunc) *shopify.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return shopify.NewClient(
		"example.myshopify.com",
		"shpat_test_token",
		shopify.WithEndpoint(srv.URL),
	)
}

func decodeGQL(t *testing.T, r *http.Request) (query string, variables map[string]any) {
	t.Helper()
	var req struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables"`
	}
	require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
	return req.Query, req.Variables
}

func TestClient_CreateProduct(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "shpat_test_token", r.Header.Get("X-Shopify-Access-Token"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		query, variables := decodeGQL(t, r)
		assert.Contains(t, query, "productCreate")
		input, ok := variables["input"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Vintage Camera", input["title"])

		_, _ = w.Write([]byte(`{
			"data": {
				"productCreate": {
					"product": {"id": "gid://shopify/Product/42", "title": "Vintage Camera", "status": "DRAFT"},
					"userErrors": []
				}
			}
		}`))
	})

	got, err := c.CreateProduct(context.Background(), shopify.ProductInput{
		Title:  "Vintage Camera",
		Status: "DRAFT",
	})
	require.NoError(t, err)
	assert.Equal(t, "gid://shopify/Product/42", got.ID)
	assert.Equal(t, "DRAFT", got.Status)
}

func TestClient_CreateProduct_UserErrors(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"data": {
				"productCreate": {
					"product": null,
					"userErrors": [{"field": ["title"], "message": "Title can't be blank"}]
				}
			}
		}`))
	})

	_, err := c.CreateProduct(context.Background(), shopify.ProductInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Title can't be blank")
}

func TestClient_CreateProduct_GraphQLErrors(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"errors": [{"message": "Throttled"}]}`))
	})

	_, err := c.CreateProduct(context.Background(), shopify.ProductInput{Title: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Throttled")
}

func TestClient_CreateProduct_HTTPError(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors": "Invalid API key or access token"}`))
	})

	_, err := c.CreateProduct(context.Background(), shopify.ProductInput{Title: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestClient_GetProductVariants(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		query, variables := decodeGQL(t, r)
		assert.Contains(t, query, "variants(first: 100)")
		assert.Equal(t, "gid://shopify/Product/42", variables["id"])

		_, _ = w.Write([]byte(`{
			"data": {
				"product": {
					"variants": {
						"nodes": [
							{"id": "gid://shopify/ProductVariant/1", "price": "19.99"},
							{"id": "gid://shopify/ProductVariant/2", "price": "24.99"}
						]
					}
				}
			}
		}`))
	})

	got, err := c.GetProductVariants(context.Background(), "gid://shopify/Product/42")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "19.99", got[0].Price)
}

func TestClient_GetProductVariants_NotFound(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"product": null}}`))
	})

	_, err := c.GetProductVariants(context.Background(), "gid://shopify/Product/404")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestClient_UpdateVariantPrice(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, variables := decodeGQL(t, r)
		input, ok := variables["input"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "29.99", input["price"])

		_, _ = w.Write([]byte(`{
			"data": {
				"productVariantUpdate": {
					"productVariant": {"id": "gid://shopify/ProductVariant/1", "price": "29.99"},
					"userErrors": []
				}
			}
		}`))
	})

	got, err := c.UpdateVariantPrice(
		context.Background(),
		"gid://shopify/ProductVariant/1",
		"29.99",
	)
	require.NoError(t, err)
	assert.Equal(t, "29.99", got.Price)
}

func TestClient_DeleteProduct(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		query, _ := decodeGQL(t, r)
		assert.Contains(t, query, "productDelete")
		_, _ = w.Write([]byte(`{
			"data": {
				"productDelete": {
					"deletedProductId": "gid://shopify/Product/42",
					"userErrors": []
				}
			}
		}`))
	})

	err := c.DeleteProduct(context.Background(), "gid://shopify/Product/42")
	require.NoError(t, err)
}

func TestClient_DeleteProduct_UserErrors(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"data": {
				"productDelete": {
					"deletedProductId": null,
					"userErrors": [{"field": ["id"], "message": "Product does not exist"}]
				}
			}
		}`))
	})

	err := c.DeleteProduct(context.Background(), "gid://shopify/Product/404")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Product does not exist")
}
