package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/devyassinepro/ebay-importer/internal/api/handlers"
	handlerMocks "github.com/devyassinepro/ebay-importer/internal/api/handlers/mocks"
	domain "github.com/devyassinepro/ebay-importer/pkg/types"
)

func TestImportsHandler_Created(t *testing.T) {
	t.Parallel()

	mockImporter := handlerMocks.NewMockImportService(t)
	mockImporter.EXPECT().
		Import(mock.Anything, "demo.myshopify.com", "https://www.ebay.com/itm/1", "").
		Return(&domain.ImportRecord{
			ID:               "rec-1",
			Shop:             "demo.myshopify.com",
			Status:           domain.ImportSuccess,
			ShopifyProductID: "gid://shopify/Product/42",
		}, nil)

	h := handlers.NewImportsHandler(mockImporter)

	_, api := humatest.New(t)
	handlers.RegisterImportRoutes(api, h)

	resp := api.Post("/api/v1/imports", map[string]any{
		"shop": "demo.myshopify.com",
		"url":  "https://www.ebay.com/itm/1",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	body := resp.Body.String()
	assert.Contains(t, body, `"status":"success"`)
	assert.Contains(t, body, `"shopify_product_id":"gid://shopify/Product/42"`)
}

func TestImportsHandler_ScrapeFailure(t *testing.T) {
	t.Parallel()

	mockImporter := handlerMocks.NewMockImportService(t)
	mockImporter.EXPECT().
		Import(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("scraping product: invalid eBay URL"))

	h := handlers.NewImportsHandler(mockImporter)

	_, api := humatest.New(t)
	handlers.RegisterImportRoutes(api, h)

	resp := api.Post("/api/v1/imports", map[string]any{
		"shop": "demo.myshopify.com",
		"url":  "https://example.com/nope",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Contains(t, resp.Body.String(), "invalid eBay URL")
}

func TestImportsHandler_ShopifyFailureReturnsRecord(t *testing.T) {
	t.Parallel()

	failed := &domain.ImportRecord{
		ID:        "rec-2",
		Status:    domain.ImportFailed,
		ErrorText: "shopify: throttled",
	}
	mockImporter := handlerMocks.NewMockImportService(t)
	mockImporter.EXPECT().
		Import(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(failed, errors.New("creating shopify product: throttled"))

	h := handlers.NewImportsHandler(mockImporter)

	_, api := humatest.New(t)
	handlers.RegisterImportRoutes(api, h)

	resp := api.Post("/api/v1/imports", map[string]any{
		"shop": "demo.myshopify.com",
		"url":  "https://www.ebay.com/itm/2",
	})

	// The failed history record comes back with a 502.
	require.Equal(t, http.StatusBadGateway, resp.Code)
	body := resp.Body.String()
	assert.Contains(t, body, `"status":"failed"`)
	assert.Contains(t, body, "shopify: throttled")
}
