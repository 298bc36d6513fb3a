package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func scrapeCmd() *cobra.Command {
	var apiKey string

	cmd := &cobra.Command{
		Use:   "scrape <ebay-url>",
		Short: "Preview an eBay listing without importing it",
		Long: "Scrapes the given eBay listing and prints the normalized product\n" +
			"data without touching Shopify or the import history.",
		Example: `  ebi scrape "https://www.ebay.com/itm/195554443332"
  ebi scrape "https://www.ebay.com/itm/195554443332" --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			res, err := c.Scrape(context.Background(), args[0], apiKey)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(res)
			}

			if !res.Success {
				return fmt.Errorf("scrape failed: %s", res.Error)
			}
			return printScrapedProduct(res.Data)
		},
	}
	cmd.Flags().StringVar(&apiKey, "api-key", "", "scraping API key override")

	return cmd
}

func quotaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quota",
		Short: "Show scraping API quota usage",
		Example: `  ebi quota
  ebi quota --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			q, err := c.GetQuota(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(q)
			}
			return printQuota(q)
		},
	}
}
