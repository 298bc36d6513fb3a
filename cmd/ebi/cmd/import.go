package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	var apiKey string

	cmd := &cobra.Command{
		Use:   "import <ebay-url>",
		Short: "Import an eBay listing into Shopify",
		Long: "Scrapes the given eBay listing, applies the shop's pricing rule,\n" +
			"and creates the product on Shopify via the Admin API.",
		Example: `  # Import a listing into the configured shop
  ebi import "https://www.ebay.com/itm/195554443332" --shop demo.myshopify.com

  # Import with a one-off scraping API key
  ebi import "https://www.ebay.com/itm/195554443332" --api-key my-rapidapi-key`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			shop, err := shopFlag()
			if err != nil {
				return err
			}

			c := newClient()
			rec, err := c.CreateImport(context.Background(), shop, args[0], apiKey)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(rec)
			}

			fmt.Printf("Imported %q\n\n", rec.Title)
			return printImportDetail(rec)
		},
	}
	cmd.Flags().StringVar(&apiKey, "api-key", "", "scraping API key override")

	return cmd
}
