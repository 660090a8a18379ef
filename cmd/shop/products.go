package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shop/internal/catalog"
)

var (
	flagSearch    string
	flagSort      string
	flagBrand     string
	flagCategory  string
	flagMinRating float64
	flagMaxPrice  float64
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Print the catalog as a table",
	Long: `Fetch the catalog and print the products that match the filters.

Filtering and sorting run locally, the same way the storefront does.

Sort keys: price-asc, price-desc, newest, name

Examples:
  shop products
  shop products --search lamp --max-price 200
  shop products --brand A --min-rating 4 --sort price-desc
  shop products --catalog catalog.json.zst`,
	Run: runProducts,
}

func init() {
	productsCmd.Flags().StringVar(&flagSearch, "search", "", "Match name or description (case-insensitive)")
	productsCmd.Flags().StringVar(&flagSort, "sort", "", "Sort key")
	productsCmd.Flags().StringVar(&flagBrand, "brand", "", "Only this brand")
	productsCmd.Flags().StringVar(&flagCategory, "category", "", "Only this category")
	productsCmd.Flags().Float64Var(&flagMinRating, "min-rating", 0, "Minimum rating (0-5)")
	productsCmd.Flags().Float64Var(&flagMaxPrice, "max-price", 0, "Maximum price (0 = catalog maximum)")
}

func runProducts(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog := newLogger(false)
	defer closeLog()

	key, err := catalog.ParseSortKey(flagSort)
	if err != nil {
		fail("%v", err)
	}

	q := catalog.NewQuery(cfg.Catalog.PriceMax)
	q.Search = flagSearch
	q.Brand = flagBrand
	q.Category = flagCategory
	q.MinRating = flagMinRating
	if flagMaxPrice > 0 {
		q.PriceMax = flagMaxPrice
	}

	var products []catalog.Product
	if offline := loadOffline(); offline != nil {
		products = offline.Products
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout*3)
		defer cancel()
		products, err = newClient(cfg, logger).AllProducts(ctx, cfg.API.PerPage)
		if err != nil {
			fail("loading products: %v", err)
		}
	}

	shown := catalog.Apply(products, q, key)
	if len(shown) == 0 {
		fmt.Println("No products match your filters.")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("ID", "Name", "Price", "Brand", "Rating", "Stock")
	for _, p := range shown {
		t.Row(p.ID, p.Name, formatPrice(p.Price), p.Brand,
			strconv.FormatFloat(p.EffectiveRating(), 'f', 1, 64), strconv.Itoa(p.Stock))
	}

	fmt.Fprintln(os.Stdout, t.Render())
	fmt.Printf("%d of %d products\n", len(shown), len(products))
}
