package cmd

import (
	"fmt"
	"os"

	"github.com/pizzadesk/pizzadesk/internal/models"
	"github.com/pizzadesk/pizzadesk/internal/simulator"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "pizzadesk",
	Short: "Catalog-and-cart engine for a pizza shop",
	Long:  `pizzadesk loads a pizza catalog, simulates customers filtering and sorting it, assembling carts with quantity-based line discounts and confirming orders, then reports the archived order metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		session, err := simulator.NewSession(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error starting session: %v\n", err)
			os.Exit(1)
		}
		if err := session.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error running session: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.Flags().Int64("seed", 42, "Random seed for the simulated session")
	rootCmd.Flags().Int("orders", 100, "Number of customer orders to simulate")
	rootCmd.Flags().String("catalog-file", "examples/pizzas.json", "Path to the JSON catalog seed file")
	rootCmd.Flags().Float64("max-price", models.DefaultMaxPrice, "Price ceiling applied when browsing the catalog")
	rootCmd.Flags().String("sort-by", models.SortNameAsc, "Catalog sort key (name-asc, name-desc, price-asc, price-desc)")
	rootCmd.Flags().String("categories", "classic,specialty,vegetarian", "Comma-separated category labels for generated pizzas")
	rootCmd.Flags().String("output-folder", "", "Folder for confirmed-order JSON logs (stdout if empty)")

	viper.BindPFlags(rootCmd.Flags())
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
