package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/devyassinepro/ebay-importer/internal/api/client"
)

func importsCmd() *cobra.Command {
	importsRoot := &cobra.Command{
		Use:   "imports",
		Short: "Browse and manage import history",
		Long: "Query past imports, inspect individual records, and remove history\n" +
			"entries, optionally deleting the Shopify products they created.",
	}

	importsRoot.AddCommand(
		importsListCmd(),
		importsGetCmd(),
		importsDeleteCmd(),
	)

	return importsRoot
}

func importsListCmd() *cobra.Command {
	var (
		status string
		search string
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List import history with optional filters",
		Example: `  # List recent imports for a shop
  ebi imports list --shop demo.myshopify.com

  # Only failed imports
  ebi imports list --status failed

  # Search titles with pagination
  ebi imports list --search camera --limit 20 --offset 40`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListImports(context.Background(), &apiclient.ListImportsParams{
				Shop:   viper.GetString("shop"),
				Status: status,
				Search: search,
				Limit:  limit,
				Offset: offset,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if len(resp.Imports) == 0 {
				fmt.Println("No imports found.")
				return nil
			}

			fmt.Printf("Showing %d of %d imports\n\n", len(resp.Imports), resp.Total)
			return printImportsTable(resp.Imports)
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "filter by status (pending, success, failed)")
	cmd.Flags().StringVar(&search, "search", "", "filter by title substring")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of results to skip")

	return cmd
}

func importsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show import record details",
		Example: `  ebi imports get 4f1c2d3e
  ebi imports get 4f1c2d3e --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			rec, err := c.GetImport(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(rec)
			}
			return printImportDetail(rec)
		},
	}
}

func importsDeleteCmd() *cobra.Command {
	var removeFromShopify bool

	cmd := &cobra.Command{
		Use:   "delete <id> [id...]",
		Short: "Delete import records",
		Long: "Deletes one or more import history records. With --remove-from-shopify\n" +
			"the Shopify product created by a single import is deleted as well;\n" +
			"bulk deletes only remove history records.",
		Example: `  # Remove a history record
  ebi imports delete 4f1c2d3e

  # Remove the record and the Shopify product it created
  ebi imports delete 4f1c2d3e --remove-from-shopify

  # Bulk-remove history records
  ebi imports delete 4f1c2d3e 5a2b3c4d 6e5f7a8b`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()

			if len(args) == 1 {
				if err := c.DeleteImport(context.Background(), args[0], removeFromShopify); err != nil {
					return err
				}
				fmt.Println("Import deleted.")
				return nil
			}

			if removeFromShopify {
				return fmt.Errorf("--remove-from-shopify only applies to single deletes")
			}

			deleted, err := c.BulkDeleteImports(context.Background(), args)
			if err != nil {
				return err
			}
			fmt.Printf("Deleted %d imports.\n", deleted)
			return nil
		},
	}
	cmd.Flags().BoolVar(&removeFromShopify, "remove-from-shopify", false,
		"also delete the Shopify product created by the import")

	return cmd
}
