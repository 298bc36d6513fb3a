package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/devyassinepro/ebay-importer/pkg/types"
)

func settingsCmd() *cobra.Command {
	settingsRoot := &cobra.Command{
		Use:   "settings",
		Short: "Manage per-shop import settings",
		Long: "View and update a shop's pricing rule, default product status,\n" +
			"and image/variant import toggles.",
	}

	settingsRoot.AddCommand(
		settingsGetCmd(),
		settingsSetCmd(),
	)

	return settingsRoot
}

func settingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the shop's import settings",
		Example: `  ebi settings get --shop demo.myshopify.com
  ebi settings get --shop demo.myshopify.com --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			shop, err := shopFlag()
			if err != nil {
				return err
			}

			c := newClient()
			s, err := c.GetSettings(context.Background(), shop)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(s)
			}
			return printSettingsDetail(s)
		},
	}
}

func settingsSetCmd() *cobra.Command {
	var (
		markupType     string
		markupAmount   float64
		defaultStatus  string
		importImages   bool
		importVariants bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Replace the shop's import settings",
		Example: `  # 25% markup, publish immediately
  ebi settings set --shop demo.myshopify.com \
    --markup-type percent --markup 25 --status active

  # Flat $5 markup, skip variants
  ebi settings set --shop demo.myshopify.com \
    --markup-type fixed --markup 5 --variants=false`,
		RunE: func(_ *cobra.Command, _ []string) error {
			shop, err := shopFlag()
			if err != nil {
				return err
			}

			c := newClient()
			saved, err := c.PutSettings(context.Background(), &domain.ShopSettings{
				Shop: shop,
				Pricing: domain.PricingRule{
					Type:   domain.MarkupType(markupType),
					Amount: markupAmount,
				},
				DefaultStatus:  domain.ProductStatus(defaultStatus),
				ImportImages:   importImages,
				ImportVariants: importVariants,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(saved)
			}

			fmt.Println("Settings saved.")
			return printSettingsDetail(saved)
		},
	}
	cmd.Flags().StringVar(&markupType, "markup-type", "percent", "markup type (percent, fixed)")
	cmd.Flags().Float64Var(&markupAmount, "markup", 0, "markup amount")
	cmd.Flags().StringVar(&defaultStatus, "status", "draft", "default product status (draft, active)")
	cmd.Flags().BoolVar(&importImages, "images", true, "import listing images")
	cmd.Flags().BoolVar(&importVariants, "variants", true, "import listing variants")

	return cmd
}
