// Package importer orchestrates the end-to-end import of an eBay listing
// into a Shopify store: scrape, apply the shop's pricing rule, create the
// product, and record the outcome in the import history.
package importer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/devyassinepro/ebay-importer/internal/metrics"
	"github.com/devyassinepro/ebay-importer/internal/notify"
	"github.com/devyassinepro/ebay-importer/internal/scraper"
	"github.com/devyassinepro/ebay-importer/internal/shopify"
	"github.com/devyassinepro/ebay-importer/internal/store"
	domain "github.com/devyassinepro/ebay-importer/pkg/types"
)

// Importer runs the scrape-to-Shopify pipeline with injected dependencies.
type Importer struct {
	store    store.Store
	scraper  scraper.ProductScraper
	shopify  shopify.AdminClient
	notifier notify.Notifier
	log      *slog.Logger
}

// Option configures the Importer.
type Option func(*Importer)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(imp *Importer) {
		imp.log = l
	}
}

// WithNotifier sets the notification backend. Without it, events are
// logged and discarded.
func WithNotifier(n notify.Notifier) Option {
	return func(imp *Importer) {
		imp.notifier = n
	}
}

// New creates an Importer with injected dependencies.
func New(s store.Store, sc scraper.ProductScraper, sh shopify.AdminClient, opts ...Option) *Importer {
	imp := &Importer{
		store:   s,
		scraper: sc,
		shopify: sh,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(imp)
	}
	if imp.notifier == nil {
		imp.notifier = notify.NewNoOpNotifier(imp.log)
	}
	return imp
}

// Import scrapes productURL and creates the product in the shop's Shopify
// store. A history record is written for every attempt; failures after the
// record exists are captured on the record rather than lost.
//
// apiKey optionally overrides the configured scraping API key.
func (imp *Importer) Import(ctx context.Context, shop, productURL, apiKey string) (*domain.ImportRecord, error) {
	start := time.Now()
	defer func() {
		metrics.ImportDuration.Observe(time.Since(start).Seconds())
	}()

	product, err := imp.scraper.Scrape(ctx, productURL, apiKey)
	if err != nil {
		metrics.ImportFailuresTotal.Inc()
		return nil, fmt.Errorf("scraping product: %w", err)
	}

	settings, err := imp.settings(ctx, shop)
	if err != nil {
		metrics.ImportFailuresTotal.Inc()
		return nil, err
	}

	rec := &domain.ImportRecord{
		Shop:         shop,
		EbayItemID:   product.ItemID,
		SourceURL:    product.SourceURL,
		Title:        product.Title,
		Price:        settings.Pricing.Apply(product.Price),
		Currency:     product.Currency,
		ImageCount:   len(product.Images),
		VariantCount: len(product.Variants),
		Status:       domain.ImportPending,
	}
	if err := imp.store.CreateImport(ctx, rec); err != nil {
		metrics.ImportFailuresTotal.Inc()
		return nil, fmt.Errorf("recording import: %w", err)
	}

	created, err := imp.shopify.CreateProduct(ctx, shopify.ToProductInput(product, settings))
	if err != nil {
		metrics.ImportFailuresTotal.Inc()
		rec.Status = domain.ImportFailed
		rec.ErrorText = err.Error()
		if uerr := imp.store.UpdateImportResult(ctx, rec.ID, domain.ImportFailed, "", rec.ErrorText); uerr != nil {
			imp.log.Error("recording import failure", "import_id", rec.ID, "error", uerr)
		}
		if nerr := imp.notifier.SendImportFailure(ctx, &notify.ImportFailure{
			Shop:      shop,
			Title:     product.Title,
			SourceURL: product.SourceURL,
			ErrorText: rec.ErrorText,
		}); nerr != nil {
			imp.log.Error("sending import failure notification", "import_id", rec.ID, "error", nerr)
		}
		return rec, fmt.Errorf("creating shopify product: %w", err)
	}

	rec.Status = domain.ImportSuccess
	rec.ShopifyProductID = created.ID
	if err := imp.store.UpdateImportResult(ctx, rec.ID, domain.ImportSuccess, created.ID, ""); err != nil {
		metrics.ImportFailuresTotal.Inc()
		return rec, fmt.Errorf("recording import success: %w", err)
	}

	metrics.ImportsTotal.Inc()
	imp.log.Info("product imported",
		"shop", shop,
		"item_id", product.ItemID,
		"shopify_product_id", created.ID,
		"variants", len(product.Variants),
	)
	return rec, nil
}

// Delete removes an import from the history and, when requested, the
// created product from Shopify as well.
func (imp *Importer) Delete(ctx context.Context, id string, removeFromShopify bool) error {
	rec, err := imp.store.GetImport(ctx, id)
	if err != nil {
		return fmt.Errorf("loading import: %w", err)
	}
	if rec == nil {
		return nil
	}

	if removeFromShopify && rec.ShopifyProductID != "" {
		if err := imp.shopify.DeleteProduct(ctx, rec.ShopifyProductID); err != nil {
			return fmt.Errorf("deleting shopify product: %w", err)
		}
	}

	if err := imp.store.DeleteImport(ctx, id); err != nil {
		return fmt.Errorf("deleting import: %w", err)
	}
	return nil
}

// settings loads the shop's saved settings, falling back to defaults when
// none exist.
func (imp *Importer) settings(ctx context.Context, shop string) (*domain.ShopSettings, error) {
	settings, err := imp.store.GetSettings(ctx, shop)
	if err != nil {
		return nil, fmt.Errorf("loading shop settings: %w", err)
	}
	if settings == nil {
		settings = domain.DefaultSettings(shop)
	}
	return settings, nil
}
