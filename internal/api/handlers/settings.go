package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/devyassinepro/ebay-importer/internal/store"
	domain "github.com/devyassinepro/ebay-importer/pkg/types"
)

// SettingsHandler handles per-shop settings endpoints.
type SettingsHandler struct {
	store store.Store
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(s store.Store) *SettingsHandler {
	return &SettingsHandler{store: s}
}

// GetSettingsInput is the input for reading a shop's settings.
type GetSettingsInput struct {
	Shop string `path:"shop" doc:"Shopify shop domain" example:"demo.myshopify.com"`
}

// GetSettingsOutput is the response for reading a shop's settings.
type GetSettingsOutput struct {
	Body domain.ShopSettings
}

// PutSettingsInput is the input for saving a shop's settings.
type PutSettingsInput struct {
	Shop string `path:"shop" doc:"Shopify shop domain"`
	Body struct {
		Pricing        domain.PricingRule   `json:"pricing"`
		DefaultStatus  domain.ProductStatus `json:"default_status"  enum:"draft,active"`
		ImportImages   bool                 `json:"import_images"`
		ImportVariants bool                 `json:"import_variants"`
	}
}

// PutSettingsOutput is the response for saving a shop's settings.
type PutSettingsOutput struct {
	Body domain.ShopSettings
}

// GetSettings returns a shop's saved settings, or the defaults when the
// shop has never saved any.
func (h *SettingsHandler) GetSettings(
	ctx context.Context,
	input *GetSettingsInput,
) (*GetSettingsOutput, error) {
	settings, err := h.store.GetSettings(ctx, input.Shop)
	if err != nil {
		return nil, huma.Error500InternalServerError("settings lookup failed: " + err.Error())
	}
	if settings == nil {
		settings = domain.DefaultSettings(input.Shop)
	}

	return &GetSettingsOutput{Body: *settings}, nil
}

// PutSettings saves a shop's settings, creating them on first write.
func (h *SettingsHandler) PutSettings(
	ctx context.Context,
	input *PutSettingsInput,
) (*PutSettingsOutput, error) {
	settings := &domain.ShopSettings{
		Shop:           input.Shop,
		Pricing:        input.Body.Pricing,
		DefaultStatus:  input.Body.DefaultStatus,
		ImportImages:   input.Body.ImportImages,
		ImportVariants: input.Body.ImportVariants,
	}

	if err := h.store.UpsertSettings(ctx, settings); err != nil {
		return nil, huma.Error500InternalServerError("saving settings failed: " + err.Error())
	}

	return &PutSettingsOutput{Body: *settings}, nil
}

// RegisterSettingsRoutes registers settings endpoints with the Huma API.
func RegisterSettingsRoutes(api huma.API, h *SettingsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-settings",
		Method:      http.MethodGet,
		Path:        "/api/v1/settings/{shop}",
		Summary:     "Get shop settings",
		Description: "Returns the shop's import settings, falling back to defaults.",
		Tags:        []string{"settings"},
	}, h.GetSettings)

	huma.Register(api, huma.Operation{
		OperationID: "put-settings",
		Method:      http.MethodPut,
		Path:        "/api/v1/settings/{shop}",
		Summary:     "Save shop settings",
		Description: "Creates or replaces the shop's import settings.",
		Tags:        []string{"settings"},
	}, h.PutSettings)
}
