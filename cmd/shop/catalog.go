package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shop/internal/catalog"
)

var flagOut string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Offline catalog snapshots",
}

var catalogPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Download the catalog into a compressed snapshot",
	Long: `Fetch every product and category and write them to a zstd-compressed
JSON file. Use it later with --catalog to browse without a backend.

Examples:
  shop catalog pull
  shop catalog pull --out ~/catalog.json.zst`,
	Run: runCatalogPull,
}

func init() {
	catalogPullCmd.Flags().StringVar(&flagOut, "out", "catalog.json.zst", "Output file")
	catalogCmd.AddCommand(catalogPullCmd)
}

func runCatalogPull(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog := newLogger(false)
	defer closeLog()

	client := newClient(cfg, logger)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	products, err := client.AllProducts(ctx, cfg.API.PerPage)
	if err != nil {
		fail("loading products: %v", err)
	}
	categories, err := client.Categories(ctx)
	if err != nil {
		logger.Warn("could not load categories", "error", err)
	}

	file := catalog.File{
		SavedAt:    time.Now().UTC().Format(time.RFC3339),
		Source:     client.BaseURL(),
		Categories: categories,
		Products:   products,
	}
	if err := catalog.WriteSnapshot(flagOut, file); err != nil {
		fail("%v", err)
	}

	logger.Info("snapshot written", "path", flagOut, "products", len(products))
	fmt.Printf("Saved %d products to %s\n", len(products), flagOut)
}
