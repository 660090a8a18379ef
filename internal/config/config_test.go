package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shop.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	var fromYAML Config
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	want := Default()
	if fromYAML.API != want.API {
		t.Errorf("api section = %+v, expected %+v", fromYAML.API, want.API)
	}
	if fromYAML.Game != want.Game {
		t.Errorf("game section = %+v, expected %+v", fromYAML.Game, want.Game)
	}
	if fromYAML.Catalog.PriceMax != want.Catalog.PriceMax || len(fromYAML.Catalog.Brands) != len(want.Catalog.Brands) {
		t.Errorf("catalog section = %+v, expected %+v", fromYAML.Catalog, want.Catalog)
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadCustomPathKeepsMissingDefaults(t *testing.T) {
	path := writeConfig(t, `
api:
  base_url: https://shop.example.com/api
  timeout: 3s
game:
  item_count: 12
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.API.BaseURL != "https://shop.example.com/api" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, expected 3s", cfg.API.Timeout)
	}
	if cfg.Game.ItemCount != 12 {
		t.Errorf("ItemCount = %d, expected 12", cfg.Game.ItemCount)
	}
	if cfg.Game.ItemSize != 40 || cfg.Game.TopMargin != 60 {
		t.Errorf("missing game fields should keep defaults, got %+v", cfg.Game)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with missing custom path should fail")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "api: [not, a, map")
	if _, err := Load(path); err == nil {
		t.Error("Load() with malformed YAML should fail")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, `
game:
  actor_width: 20
`)
	if _, err := Load(path); err == nil {
		t.Error("actor narrower than an item should be rejected")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SHOP_API_URL", "http://env.example/api")
	t.Setenv("SHOP_GAME_ITEMS", "3")

	cfg, err := Load(writeConfig(t, "game:\n  item_count: 12\n"))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.API.BaseURL != "http://env.example/api" {
		t.Errorf("BaseURL = %q, expected env override", cfg.API.BaseURL)
	}
	if cfg.Game.ItemCount != 3 {
		t.Errorf("ItemCount = %d, expected env override 3", cfg.Game.ItemCount)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{"fixed", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	base := Default().Game

	easy := base
	ApplyPreset(&easy, DifficultyEasy)
	if easy.MaxSpeed != base.MaxSpeed*0.5 || easy.ItemCount != 6 {
		t.Errorf("easy preset = speed %v count %d", easy.MaxSpeed, easy.ItemCount)
	}

	normal := base
	ApplyPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Errorf("normal preset should not change config")
	}

	hard := base
	ApplyPreset(&hard, DifficultyHard)
	if hard.MaxSpeed != base.MaxSpeed*2 || hard.ItemCount != 12 {
		t.Errorf("hard preset = speed %v count %d", hard.MaxSpeed, hard.ItemCount)
	}
}
