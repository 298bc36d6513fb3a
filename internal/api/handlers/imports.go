package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/devyassinepro/ebay-importer/pkg/types"
)

// ImportService is the import workflow the handlers depend on.
type ImportService interface {
	Import(ctx context.Context, shop, productURL, apiKey string) (*domain.ImportRecord, error)
	Delete(ctx context.Context, id string, removeFromShopify bool) error
}

// ImportsHandler handles the import creation endpoint.
type ImportsHandler struct {
	importer ImportService
}

// NewImportsHandler creates a new ImportsHandler.
func NewImportsHandler(imp ImportService) *ImportsHandler {
	return &ImportsHandler{importer: imp}
}

// CreateImportInput is the request body for importing a listing.
type CreateImportInput struct {
	Body struct {
		Shop   string `json:"shop"              doc:"Shopify shop domain" example:"demo.myshopify.com"`
		URL    string `json:"url"               doc:"eBay listing URL"    example:"https://www.ebay.com/itm/195554443332"`
		APIKey string `json:"api_key,omitempty" doc:"Optional scraping API key override" required:"false"`
	}
}

// CreateImportOutput is the created (or failed) import record.
type CreateImportOutput struct {
	Status int
	Body   domain.ImportRecord
}

// CreateImport scrapes the listing and creates the product in Shopify.
// When the scrape succeeds but the Shopify create fails, the failed history
// record is returned with a 502.
func (h *ImportsHandler) CreateImport(
	ctx context.Context,
	input *CreateImportInput,
) (*CreateImportOutput, error) {
	rec, err := h.importer.Import(ctx, input.Body.Shop, input.Body.URL, input.Body.APIKey)
	if err != nil {
		if rec == nil {
			return nil, huma.Error422UnprocessableEntity("import failed: " + err.Error())
		}
		return &CreateImportOutput{Status: http.StatusBadGateway, Body: *rec}, nil
	}

	return &CreateImportOutput{Status: http.StatusCreated, Body: *rec}, nil
}

// RegisterImportRoutes registers the import creation endpoint with the Huma API.
func RegisterImportRoutes(api huma.API, h *ImportsHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-import",
		Method:        http.MethodPost,
		Path:          "/api/v1/imports",
		Summary:       "Import a listing into Shopify",
		Description:   "Scrapes an eBay listing, applies the shop's pricing rule, and creates the product in Shopify.",
		Tags:          []string{"imports"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusUnprocessableEntity, http.StatusBadGateway},
	}, h.CreateImport)
}
