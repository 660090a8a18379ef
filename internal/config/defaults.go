package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/shop.yaml
var defaultShopYAML []byte

// Default returns the built-in configuration. It matches defaults/shop.yaml.
func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL:           "http://localhost:5000/api",
			Timeout:           10 * time.Second,
			RequestsPerSecond: 10,
			Burst:             5,
			PerPage:           50,
		},
		Game: GameConfig{
			ItemCount:   8,
			ItemSize:    40,
			ActorWidth:  60,
			ActorHeight: 60,
			TopMargin:   60,
			MaxSpeed:    1.0,
			CellWidth:   10,
			CellHeight:  20,
		},
		Catalog: CatalogConfig{
			Brands:    []string{"Brand A", "Brand B", "Brand C"},
			PriceMax:  1000,
			PriceStep: 50,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultShopYAML
}
