package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shop/internal/api"
)

var flagClear bool

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Print your cart",
	Long: `Print the items in your cart. Requires 'shop login'.

Examples:
  shop cart
  shop cart --clear`,
	Run: runCart,
}

func init() {
	cartCmd.Flags().BoolVar(&flagClear, "clear", false, "Remove every item from the cart")
}

func runCart(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog := newLogger(false)
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	token := requireToken(store)

	client := newClient(cfg, logger)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout*3)
	defer cancel()

	if flagClear {
		if err := client.ClearCart(ctx, token); err != nil {
			fail("%s", cartError(err))
		}
		fmt.Println("Cart cleared.")
		return
	}

	cart, err := client.Cart(ctx, token)
	if err != nil {
		fail("%s", cartError(err))
	}
	if len(cart.Items) == 0 {
		fmt.Println("Your cart is empty.")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Product", "Quantity", "Price")
	var total float64
	for _, it := range cart.Items {
		name, price := it.Product, ""
		if p, err := client.Product(ctx, it.Product); err == nil {
			name = p.Name
			price = formatPrice(p.Price * float64(it.Quantity))
			total += p.Price * float64(it.Quantity)
		}
		t.Row(name, strconv.Itoa(it.Quantity), price)
	}

	fmt.Println(t.Render())
	fmt.Printf("%d items, total %s\n", cart.Quantity(), formatPrice(total))
}

func cartError(err error) string {
	if errors.Is(err, api.ErrUnauthorized) {
		return "Your session has expired. Please log in again."
	}
	return api.Message(err, "Could not load cart.")
}
