package cartchase

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// SpawnConfig describes the batch of items created at mount.
type SpawnConfig struct {
	Count    int
	ItemSize float64
	MaxSpeed float64
}

// Spawn creates cfg.Count items at random positions inside the area, below
// the top margin, with each velocity component drawn from [-MaxSpeed, MaxSpeed).
// Item ids are read from rng too, so one seed reproduces the whole batch.
// A degenerate area yields no items.
func Spawn(rng *rand.Rand, area PlayArea, cfg SpawnConfig) []Item {
	if cfg.Count <= 0 || !area.Valid(cfg.ItemSize) {
		return nil
	}

	spanX := area.Width - cfg.ItemSize
	spanY := area.Height - cfg.ItemSize - area.TopMargin

	items := make([]Item, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		items = append(items, Item{
			ID: itemID(rng, i),
			X:  rng.Float64() * spanX,
			Y:  area.TopMargin + rng.Float64()*spanY,
			DX: (rng.Float64()*2 - 1) * cfg.MaxSpeed,
			DY: (rng.Float64()*2 - 1) * cfg.MaxSpeed,
		})
	}
	return items
}

func itemID(rng *rand.Rand, n int) string {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return fmt.Sprintf("item-%d", n)
	}
	return id.String()
}
