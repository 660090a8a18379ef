package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shop/internal/api"
	"github.com/vovakirdan/tui-shop/internal/catalog"
	"github.com/vovakirdan/tui-shop/internal/config"
	"github.com/vovakirdan/tui-shop/internal/core"
	"github.com/vovakirdan/tui-shop/internal/games/cartchase"
	"github.com/vovakirdan/tui-shop/internal/platform/tui"
	"github.com/vovakirdan/tui-shop/internal/storage"
)

// loadConfig reads the configuration, applies the --api override and the
// difficulty preset, and hands the game section to the cart chase package.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	if flagAPI != "" {
		cfg.API.BaseURL = flagAPI
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fail("%v", err)
	}
	config.ApplyPreset(&cfg.Game, preset)
	cartchase.SetGameConfig(cfg.Game)

	return cfg
}

// applyTheme picks the storefront theme before any program starts.
func applyTheme() {
	if flagNoColor || os.Getenv("NO_COLOR") != "" {
		tui.SetTheme(tui.MonochromeTheme())
	}
}

// newLogger returns a logger and its cleanup. Interactive programs log to
// --log-file only, so the terminal UI is never overwritten.
func newLogger(interactive bool) (*log.Logger, func()) {
	var w io.Writer = os.Stderr
	cleanup := func() {}

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fail("cannot open log file: %v", err)
		}
		w = f
		cleanup = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "shop",
	})
	if os.Getenv("SHOP_DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, cleanup
}

func newClient(cfg config.Config, logger *log.Logger) *api.Client {
	return api.New(api.Options{
		BaseURL:           cfg.API.BaseURL,
		Timeout:           cfg.API.Timeout,
		RequestsPerSecond: cfg.API.RequestsPerSecond,
		Burst:             cfg.API.Burst,
		Logger:            logger,
	})
}

// openStore opens the database, or returns nil with a warning. Browsing
// works without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// loadOffline reads --catalog when set.
func loadOffline() *catalog.File {
	if flagCatalog == "" {
		return nil
	}
	file, err := catalog.LoadFile(flagCatalog)
	if err != nil {
		fail("%v", err)
	}
	return &file
}

// runtimeConfig builds the game runtime from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

// localSession assembles the services for a local interactive run.
func localSession(cfg config.Config, logger *log.Logger) (*tui.Session, func()) {
	store := openStore(logger)
	s := &tui.Session{
		Client:  newClient(cfg, logger),
		Store:   store,
		Owner:   storage.LocalOwner,
		Config:  cfg,
		Runtime: runtimeConfig(),
		Logger:  logger,
		Offline: loadOffline(),
	}
	return s, func() {
		if store != nil {
			store.Close()
		}
	}
}

// requireToken returns the stored token or exits with a login hint.
func requireToken(store *storage.Store) string {
	if store == nil {
		fail("database is unavailable")
	}
	token, err := store.Token(storage.LocalOwner)
	if err != nil {
		fail("%v", err)
	}
	if token == "" {
		fail("%s", "You must be logged in. Run 'shop login' first.")
	}
	return token
}

func formatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}
