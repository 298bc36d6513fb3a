package client

import (
	"context"
	"fmt"

	domain "github.com/devyassinepro/ebay-importer/pkg/types"
)

// settingsRequest contains only the fields the API accepts for updates.
type settingsRequest struct {
	Pricing        domain.PricingRule   `json:"pricing"`
	DefaultStatus  domain.ProductStatus `json:"default_status"`
	ImportImages   bool                 `json:"import_images"`
	ImportVariants bool                 `json:"import_variants"`
}

// GetSettings returns the import settings for a shop. Shops that never saved
// settings get the defaults back.
func (c *Client) GetSettings(ctx context.Context, shop string) (*domain.ShopSettings, error) {
	var s domain.ShopSettings
	if err := c.get(ctx, fmt.Sprintf("/api/v1/settings/%s", shop), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// PutSettings replaces the import settings for a shop.
func (c *Client) PutSettings(
	ctx context.Context,
	settings *domain.ShopSettings,
) (*domain.ShopSettings, error) {
	body := settingsRequest{
		Pricing:        settings.Pricing,
		DefaultStatus:  settings.DefaultStatus,
		ImportImages:   settings.ImportImages,
		ImportVariants: settings.ImportVariants,
	}

	var s domain.ShopSettings
	path := fmt.Sprintf("/api/v1/settings/%s", settings.Shop)
	if err := c.put(ctx, path, body, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
