package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shop/internal/platform/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive storefront",
	Long: `Open the storefront in the terminal.

Controls:
  Up/Down/j/k  - Navigate
  Enter        - Open
  Esc          - Back
  /            - Search products
  Q/Ctrl+C     - Quit

Examples:
  shop browse
  shop browse --api http://shop.local:5000/api
  shop browse --catalog catalog.json.zst`,
	Run: runBrowse,
}

func runBrowse(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	applyTheme()
	logger, closeLog := newLogger(true)
	defer closeLog()

	session, closeSession := localSession(cfg, logger)
	defer closeSession()

	logger.Info("storefront started", "api", cfg.API.BaseURL, "offline", session.Offline != nil)
	if err := tui.RunApp(session); err != nil {
		closeSession()
		closeLog()
		fail("running storefront: %v", err)
	}
}
