// Package config provides YAML-based configuration loading for the storefront
// client, with environment overrides and cart chase difficulty presets.
package config

import (
	"errors"
	"time"
)

// Config is the full client configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Game    GameConfig    `yaml:"game"`
	Catalog CatalogConfig `yaml:"catalog"`
}

// APIConfig configures the REST backend client.
type APIConfig struct {
	BaseURL           string        `yaml:"base_url" env:"SHOP_API_URL"`
	Timeout           time.Duration `yaml:"timeout" env:"SHOP_API_TIMEOUT"`
	RequestsPerSecond float64       `yaml:"requests_per_second" env:"SHOP_API_RPS"`
	Burst             int           `yaml:"burst" env:"SHOP_API_BURST"`
	PerPage           int           `yaml:"per_page" env:"SHOP_API_PER_PAGE"`
}

// GameConfig defines the cart chase field. Sizes are in virtual pixels;
// CellWidth x CellHeight virtual pixels make up one terminal cell.
type GameConfig struct {
	ItemCount   int     `yaml:"item_count" env:"SHOP_GAME_ITEMS"`
	ItemSize    float64 `yaml:"item_size"`
	ActorWidth  float64 `yaml:"actor_width"`
	ActorHeight float64 `yaml:"actor_height"`
	TopMargin   float64 `yaml:"top_margin"`
	MaxSpeed    float64 `yaml:"max_speed" env:"SHOP_GAME_SPEED"`
	CellWidth   float64 `yaml:"cell_width"`
	CellHeight  float64 `yaml:"cell_height"`
}

// CatalogConfig defines the product filter panel.
type CatalogConfig struct {
	Brands    []string `yaml:"brands"`
	PriceMax  float64  `yaml:"price_max"`
	PriceStep float64  `yaml:"price_step"`
}

// Validate reports configuration values the client cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.API.BaseURL == "" {
		errs = append(errs, errors.New("api.base_url is required"))
	}
	if c.API.RequestsPerSecond < 0 {
		errs = append(errs, errors.New("api.requests_per_second must not be negative"))
	}
	if c.Game.ItemCount < 0 {
		errs = append(errs, errors.New("game.item_count must not be negative"))
	}
	if c.Game.ItemSize <= 0 {
		errs = append(errs, errors.New("game.item_size must be positive"))
	}
	if c.Game.ActorWidth <= c.Game.ItemSize || c.Game.ActorHeight <= c.Game.ItemSize {
		errs = append(errs, errors.New("game.actor_width and game.actor_height must exceed game.item_size"))
	}
	if c.Game.TopMargin < 0 {
		errs = append(errs, errors.New("game.top_margin must not be negative"))
	}
	if c.Game.CellWidth <= 0 || c.Game.CellHeight <= 0 {
		errs = append(errs, errors.New("game.cell_width and game.cell_height must be positive"))
	}
	if c.Catalog.PriceMax <= 0 || c.Catalog.PriceStep <= 0 {
		errs = append(errs, errors.New("catalog.price_max and catalog.price_step must be positive"))
	}
	return errors.Join(errs...)
}
