package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	apiclient "github.com/devyassinepro/ebay-importer/internal/api/client"
	domain "github.com/devyassinepro/ebay-importer/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printImportsTable(imports []domain.ImportRecord) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tTITLE\tPRICE\tSTATUS\tIMPORTED\n")
	for i := range imports {
		r := &imports[i]
		tw.writef("%s\t%s\t%s %.2f\t%s\t%s\n",
			r.ID,
			truncate(r.Title, 40),
			r.Currency,
			r.Price,
			r.Status,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}
	return tw.finish()
}

func printImportDetail(r *domain.ImportRecord) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", r.ID)
	tw.writef("Shop:\t%s\n", r.Shop)
	tw.writef("eBay Item:\t%s\n", r.EbayItemID)
	tw.writef("Title:\t%s\n", r.Title)
	tw.writef("Price:\t%s %.2f\n", r.Currency, r.Price)
	tw.writef("Images:\t%d\n", r.ImageCount)
	tw.writef("Variants:\t%d\n", r.VariantCount)
	tw.writef("Status:\t%s\n", r.Status)
	if r.ShopifyProductID != "" {
		tw.writef("Shopify Product:\t%s\n", r.ShopifyProductID)
	}
	if r.ErrorText != "" {
		tw.writef("Error:\t%s\n", r.ErrorText)
	}
	if r.LastSyncedAt != nil {
		tw.writef("Last Synced:\t%s\n", r.LastSyncedAt.Format("2006-01-02 15:04:05"))
	}
	tw.writef("Source:\t%s\n", r.SourceURL)
	return tw.finish()
}

func printScrapedProduct(p *domain.ScrapedProduct) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Item ID:\t%s\n", p.ItemID)
	tw.writef("Title:\t%s\n", p.Title)
	tw.writef("Price:\t%s %.2f\n", p.Currency, p.Price)
	tw.writef("Images:\t%d\n", len(p.Images))
	tw.writef("Variants:\t%d\n", len(p.Variants))
	if p.Rating != nil {
		tw.writef("Rating:\t%.1f\n", *p.Rating)
	}
	if p.Availability != "" {
		tw.writef("Availability:\t%s\n", p.Availability)
	}
	for _, opt := range p.Options {
		tw.writef("Option %s:\t%d values\n", opt.Name, len(opt.Values))
	}
	return tw.finish()
}

func printSettingsDetail(s *domain.ShopSettings) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Shop:\t%s\n", s.Shop)
	tw.writef("Markup:\t%s %.2f\n", s.Pricing.Type, s.Pricing.Amount)
	tw.writef("Default Status:\t%s\n", s.DefaultStatus)
	tw.writef("Import Images:\t%v\n", s.ImportImages)
	tw.writef("Import Variants:\t%v\n", s.ImportVariants)
	return tw.finish()
}

func printQuota(q *apiclient.Quota) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Daily Limit:\t%d\n", q.DailyLimit)
	tw.writef("Used Today:\t%d\n", q.DailyUsed)
	tw.writef("Remaining:\t%d\n", q.Remaining)
	if !q.ResetAt.IsZero() {
		tw.writef("Resets At:\t%s\n", q.ResetAt.Format("2006-01-02 15:04:05 MST"))
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
