package cartchase

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-shop/internal/config"
	"github.com/vovakirdan/tui-shop/internal/core"
	"github.com/vovakirdan/tui-shop/internal/registry"
)

const (
	headerText   = "Move your mouse to collect the items with the cart!"
	tooSmallText = "Window too small"
	itemGlyph    = '█'
	actorGlyph   = '▓'
)

// cartSprite is drawn when the actor maps to exactly 6x3 cells.
var cartSprite = []string{
	`\____/`,
	` |__| `,
	` o  o `,
}

var itemColors = []core.Color{core.ColorMagenta, core.ColorYellow, core.ColorBrightCyan, core.ColorOrange}

// gameConfig is used by games created through the registry.
var gameConfig = config.Default().Game

// SetGameConfig replaces the configuration used by registry-created games.
func SetGameConfig(cfg config.GameConfig) {
	gameConfig = cfg
}

// Game adapts the cart chase component to the registry.Game interface. It
// owns a core.Loop: pointer moves in the input frame are dispatched to the
// loop and each Step runs one frame.
type Game struct {
	cfg     config.GameConfig
	runtime core.RuntimeConfig
	loop    *core.Loop
	comp    *Component
	paused  bool
	ticks   uint64
}

// New creates a game with the package configuration.
func New() *Game {
	return NewWithConfig(gameConfig)
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.GameConfig) *Game {
	return &Game{cfg: cfg, loop: core.NewLoop()}
}

func init() {
	registry.Register("cartchase", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "cartchase"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Cart Chase"
}

// Reset unmounts the current field and mounts a new one sized to the screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.paused = false
	g.ticks = 0

	if g.comp != nil {
		g.comp.Unmount()
	}
	g.comp = NewComponent(Settings{
		Spawn: SpawnConfig{
			Count:    g.cfg.ItemCount,
			ItemSize: g.cfg.ItemSize,
			MaxSpeed: g.cfg.MaxSpeed,
		},
		ActorWidth:  g.cfg.ActorWidth,
		ActorHeight: g.cfg.ActorHeight,
	}, rand.New(rand.NewSource(rc.Seed)))
	g.comp.Mount(g.loop, g.playArea(rc.ScreenW, rc.ScreenH))
}

// Resize applies a new terminal size without respawning the field. A field
// that was mounted too small to spawn anything is respawned once it fits.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	if g.comp == nil {
		return
	}
	f := g.comp.Field()
	area := g.playArea(w, h)
	if f != nil && !f.Area().Valid(f.ItemSize()) && area.Valid(f.ItemSize()) &&
		f.Live() == 0 && f.Collected() == 0 {
		g.Reset(g.runtime)
		return
	}
	g.comp.Resize(area)
}

// Close unmounts the component. The game can be reused after another Reset.
func (g *Game) Close() {
	if g.comp != nil {
		g.comp.Unmount()
	}
}

func (g *Game) playArea(w, h int) PlayArea {
	return PlayArea{
		Width:     float64(w) * g.cfg.CellWidth,
		Height:    float64(h) * g.cfg.CellHeight,
		TopMargin: g.cfg.TopMargin,
	}
}

// Step applies one tick of input. Pointer moves are delivered in order, then
// one frame runs unless the game is paused.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.runtime.Seed++
		g.Reset(g.runtime)
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	for _, p := range in.Moves {
		x, y := g.PointerPosition(p)
		g.loop.DispatchPointer(x, y)
	}

	if !g.paused {
		g.loop.RunFrame()
		g.ticks++
	}

	return core.StepResult{State: g.State()}
}

// PointerPosition converts a cell to the virtual pixel at its center.
func (g *Game) PointerPosition(p core.Point) (float64, float64) {
	return (float64(p.X) + 0.5) * g.cfg.CellWidth, (float64(p.Y) + 0.5) * g.cfg.CellHeight
}

// Ticks returns how many frames have run since the last Reset.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// Field exposes the live field, or nil before Reset.
func (g *Game) Field() *Field {
	if g.comp == nil {
		return nil
	}
	return g.comp.Field()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{Paused: g.paused}
	if f := g.Field(); f != nil {
		st.Remaining = f.Live()
		st.Collected = f.Collected()
	}
	return st
}

// Render draws the header, the items and the cart.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawTextCentered(0, headerText, core.ColorWhite)
	status := fmt.Sprintf("Items left: %d", g.State().Remaining)
	if g.paused {
		status += "  [paused]"
	}
	dst.DrawTextCentered(1, status, core.ColorBrightYellow)

	headerRows := int(g.cfg.TopMargin / g.cfg.CellHeight)
	if headerRows > 2 {
		dst.DrawHLine(0, headerRows-1, dst.Width(), '─', core.ColorGray)
	}

	f := g.Field()
	if f == nil {
		return
	}
	if !f.Area().Valid(f.ItemSize()) {
		renderTooSmall(dst)
		return
	}

	for i, it := range f.Items() {
		r := it.Box(f.ItemSize()).Cells(g.cfg.CellWidth, g.cfg.CellHeight)
		dst.DrawRect(r, itemGlyph, itemColors[i%len(itemColors)])
	}

	g.renderActor(dst, f.Actor())
}

// renderTooSmall frames the warning when the screen has room for a box.
func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	w := len(tooSmallText) + 4
	if dst.Width() >= w && dst.Height() >= 3 {
		box := core.NewRect((dst.Width()-w)/2, y-1, w, 3)
		dst.DrawRect(box, ' ', core.ColorDefault)
		dst.DrawBox(box, core.ColorRed)
	}
	dst.DrawTextCentered(y, tooSmallText, core.ColorRed)
}

func (g *Game) renderActor(dst *core.Screen, actor core.Box) {
	r := actor.Cells(g.cfg.CellWidth, g.cfg.CellHeight)
	if r.W != len([]rune(cartSprite[0])) || r.H != len(cartSprite) {
		dst.DrawRect(r, actorGlyph, core.ColorCyan)
		return
	}
	for dy, line := range cartSprite {
		dx := 0
		for _, ch := range line {
			if ch != ' ' {
				dst.SetColored(r.X+dx, r.Y+dy, ch, core.ColorCyan)
			}
			dx++
		}
	}
}
