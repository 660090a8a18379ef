// shop is a terminal storefront for a REST product catalog, with a mouse
// mini-game on the side.
//
// Usage:
//
//	shop browse              - Open the interactive storefront (default)
//	shop play <game>         - Play a game directly
//	shop games               - List available games
//	shop products            - Print the filtered catalog
//	shop login / logout      - Manage the stored access token
//	shop cart                - Print the cart
//	shop catalog pull        - Save a compressed offline catalog
//	shop serve               - Serve the storefront over SSH
//
// Global flags:
//
//	--api <url>          - Backend base URL
//	--config <path>      - Config file
//	--db <path>          - Database path (default: ~/.shop/shop.db)
//	--fps <rate>         - Game tick rate (default: 60)
//	--seed <value>       - RNG seed for reproducible games
//	--catalog <path>     - Offline catalog file instead of the backend
//	--difficulty <name>  - easy, normal or hard
//	--log-file <path>    - Write logs of interactive commands to a file
//	--no-color           - Monochrome storefront theme
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-shop/internal/games/cartchase"
)

var (
	// Global flags
	flagAPI        string
	flagConfig     string
	flagDBPath     string
	flagFPS        int
	flagSeed       int64
	flagCatalog    string
	flagDifficulty string
	flagLogFile    string
	flagNoColor    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shop",
	Short: "TUI Shop - Browse a product catalog in your terminal",
	Long: `TUI Shop is a terminal storefront. Browse and filter products, sign in,
manage your cart and chase items around the screen with your mouse.

Available commands:
  browse   - Interactive storefront (default)
  play     - Play a game directly
  games    - Show all available games
  products - Print the catalog as a table
  login    - Sign in and store the access token
  logout   - Forget the stored token
  cart     - Print your cart
  catalog  - Offline catalog snapshots
  serve    - Start SSH server for remote shoppers

Examples:
  shop
  shop products --search lamp --sort price-asc
  shop play cartchase --difficulty hard
  shop catalog pull --out catalog.json.zst
  shop browse --catalog catalog.json.zst
  shop serve --ssh :2222`,
	Run: runBrowse,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagAPI, "api", "", "Backend base URL (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shop/shop.db", "Path to token and history database")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Game tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Offline catalog file (.json or .json.zst)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Game difficulty: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for interactive commands")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Use the monochrome storefront theme (also NO_COLOR)")

	// Add subcommands
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(cartCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(serveCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
