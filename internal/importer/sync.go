package importer

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/devyassinepro/ebay-importer/internal/metrics"
	"github.com/devyassinepro/ebay-importer/internal/notify"
	"github.com/devyassinepro/ebay-importer/internal/shopify"
	domain "github.com/devyassinepro/ebay-importer/pkg/types"
)

const defaultSyncBatch = 20

// priceEpsilon is the smallest price difference worth pushing to Shopify.
const priceEpsilon = 0.005

// SyncPrices re-scrapes successful imports whose last sync is older than
// interval and pushes changed prices to Shopify. At most batch imports are
// processed per cycle; zero means the default batch size.
func (imp *Importer) SyncPrices(ctx context.Context, shop string, interval time.Duration, batch int) error {
	metrics.SyncCyclesTotal.Inc()

	if batch <= 0 {
		batch = defaultSyncBatch
	}

	records, err := imp.store.ListSyncableImports(ctx, shop, time.Now().Add(-interval), batch)
	if err != nil {
		return fmt.Errorf("listing syncable imports: %w", err)
	}

	settings, err := imp.settings(ctx, shop)
	if err != nil {
		return err
	}

	var firstErr error
	for i := range records {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		rec := &records[i]
		if err := imp.syncOne(ctx, rec, settings.Pricing); err != nil {
			imp.log.Error("price sync failed",
				"import_id", rec.ID,
				"item_id", rec.EbayItemID,
				"error", err,
			)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

func (imp *Importer) syncOne(ctx context.Context, rec *domain.ImportRecord, pricing domain.PricingRule) error {
	product, err := imp.scraper.Scrape(ctx, rec.SourceURL, "")
	if err != nil {
		return fmt.Errorf("re-scraping %s: %w", rec.SourceURL, err)
	}

	newPrice := pricing.Apply(product.Price)
	if math.Abs(newPrice-rec.Price) >= priceEpsilon {
		variants, err := imp.shopify.GetProductVariants(ctx, rec.ShopifyProductID)
		if err != nil {
			return fmt.Errorf("loading variants: %w", err)
		}

		formatted := shopify.FormatPrice(newPrice)
		for _, v := range variants {
			if _, err := imp.shopify.UpdateVariantPrice(ctx, v.ID, formatted); err != nil {
				return fmt.Errorf("updating variant %s: %w", v.ID, err)
			}
			metrics.SyncPriceUpdatesTotal.Inc()
		}

		imp.log.Info("price updated",
			"import_id", rec.ID,
			"item_id", rec.EbayItemID,
			"old_price", rec.Price,
			"new_price", newPrice,
		)

		if nerr := imp.notifier.SendPriceChange(ctx, &notify.PriceChange{
			Shop:         rec.Shop,
			Title:        rec.Title,
			SourceURL:    rec.SourceURL,
			Currency:     rec.Currency,
			OldPrice:     rec.Price,
			NewPrice:     newPrice,
			VariantCount: len(variants),
		}); nerr != nil {
			imp.log.Error("sending price change notification", "import_id", rec.ID, "error", nerr)
		}
	}

	if err := imp.store.MarkImportSynced(ctx, rec.ID, newPrice, time.Now()); err != nil {
		return fmt.Errorf("marking import synced: %w", err)
	}
	return nil
}
