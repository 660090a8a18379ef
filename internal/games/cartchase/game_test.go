package cartchase

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-shop/internal/config"
	"github.com/vovakirdan/tui-shop/internal/core"
	"github.com/vovakirdan/tui-shop/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 42}
}

func TestGameRegistered(t *testing.T) {
	g, err := registry.Create("cartchase")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Cart Chase" {
		t.Errorf("Title() = %q", g.Title())
	}
	if _, ok := g.(registry.Resizer); !ok {
		t.Error("cart chase should support resizing")
	}
}

func TestGameResetSpawnsItems(t *testing.T) {
	g := NewWithConfig(config.Default().Game)
	g.Reset(testRuntime())

	st := g.State()
	if st.Remaining != 8 {
		t.Errorf("Remaining = %d, expected 8", st.Remaining)
	}
	area := g.Field().Area()
	if area.Width != 800 || area.Height != 600 || area.TopMargin != 60 {
		t.Errorf("area = %+v, expected 800x600 top 60", area)
	}
}

func TestGameDeterminism(t *testing.T) {
	g1 := NewWithConfig(config.Default().Game)
	g2 := NewWithConfig(config.Default().Game)
	g1.Reset(testRuntime())
	g2.Reset(testRuntime())

	for i := 0; i < 120; i++ {
		in := core.NewInputFrame()
		if i%10 == 0 {
			in.Move(i%80, 3+i%27)
		}
		r1 := g1.Step(in)
		r2 := g2.Step(in)
		if r1.State != r2.State {
			t.Fatalf("tick %d: states differ %+v vs %+v", i, r1.State, r2.State)
		}
	}

	a, b := g1.Field().Items(), g2.Field().Items()
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("item %d differs", i)
		}
	}
}

func TestPointerPositionIsCellCenter(t *testing.T) {
	g := NewWithConfig(config.Default().Game)
	x, y := g.PointerPosition(core.Point{X: 12, Y: 6})
	if x != 125 || y != 130 {
		t.Errorf("PointerPosition = (%v, %v), expected (125, 130)", x, y)
	}
}

func TestStepDispatchesMoves(t *testing.T) {
	g := NewWithConfig(config.Default().Game)
	g.Reset(testRuntime())

	in := core.NewInputFrame()
	in.Move(12, 6)
	g.Step(in)

	a := g.Field().Actor()
	if a.X != 95 || a.Y != 100 {
		t.Errorf("actor = (%v, %v), expected (95, 100)", a.X, a.Y)
	}
}

func TestPauseStopsFramesNotPointer(t *testing.T) {
	g := NewWithConfig(config.Default().Game)
	g.Reset(testRuntime())

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	before := g.Field().Items()
	ticks := g.Ticks()
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Ticks() != ticks {
		t.Errorf("frames ran while paused")
	}
	after := g.Field().Items()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("item %d moved while paused", i)
		}
	}

	move := core.NewInputFrame()
	move.Move(40, 15)
	g.Step(move)
	if a := g.Field().Actor(); a.X != 375 {
		t.Errorf("actor x = %v, expected 375 while paused", a.X)
	}
}

func TestRestartRespawns(t *testing.T) {
	g := NewWithConfig(config.Default().Game)
	g.Reset(testRuntime())

	for _, it := range g.Field().Items() {
		in := core.NewInputFrame()
		in.Move(int(it.X/10), int(it.Y/20))
		g.Step(in)
	}
	collected := g.State().Collected
	if collected == 0 {
		t.Fatal("expected at least one item collected")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	st := g.Step(in).State
	if st.Remaining != 8 || st.Collected != 0 {
		t.Errorf("after restart state = %+v, expected 8 remaining", st)
	}
	if g.loop.Listeners() != 1 || g.loop.PendingFrames() != 1 {
		t.Errorf("restart leaked handles: listeners=%d frames=%d", g.loop.Listeners(), g.loop.PendingFrames())
	}
}

func TestResizeKeepsItems(t *testing.T) {
	g := NewWithConfig(config.Default().Game)
	g.Reset(testRuntime())

	g.Resize(40, 15)
	if g.State().Remaining != 8 {
		t.Errorf("Remaining = %d after resize, expected 8", g.State().Remaining)
	}
	for _, it := range g.Field().Items() {
		if it.X > 360 || it.Y > 260 {
			t.Errorf("item %+v outside resized area", it)
		}
	}
}

func TestTinyScreen(t *testing.T) {
	g := NewWithConfig(config.Default().Game)
	g.Reset(core.RuntimeConfig{ScreenW: 3, ScreenH: 3, Seed: 1})

	if g.State().Remaining != 0 {
		t.Errorf("Remaining = %d, expected 0 on tiny screen", g.State().Remaining)
	}
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(3, 3)
	g.Render(screen)
}

func TestResizeFromTinyScreenSpawns(t *testing.T) {
	g := NewWithConfig(config.Default().Game)
	g.Reset(core.RuntimeConfig{ScreenW: 0, ScreenH: 0, Seed: 1})
	if g.State().Remaining != 0 {
		t.Fatalf("Remaining = %d, expected 0 on empty screen", g.State().Remaining)
	}

	g.Resize(80, 24)
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}

	if got := g.Field().Live(); got != 8 {
		t.Errorf("Live = %d after growing the screen, expected 8", got)
	}
	if g.Field().Collected() != 0 {
		t.Errorf("Collected = %d, expected 0", g.Field().Collected())
	}
}

func TestResizeKeepsPopulatedField(t *testing.T) {
	g := NewWithConfig(config.Default().Game)
	g.Reset(testRuntime())
	before := g.Field()

	g.Resize(2, 2)
	g.Resize(80, 24)

	if g.Field() != before {
		t.Error("resizing a populated field should not respawn it")
	}
}

func TestRenderTooSmallFramed(t *testing.T) {
	g := NewWithConfig(config.Default().Game)
	g.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 3, Seed: 1})

	screen := core.NewScreen(30, 3)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, tooSmallText) {
		t.Errorf("render should warn about the window size:\n%s", out)
	}
	if !strings.Contains(out, "┌") || !strings.Contains(out, "┘") {
		t.Errorf("warning should be framed:\n%s", out)
	}
}

func TestCloseReleasesHandles(t *testing.T) {
	g := NewWithConfig(config.Default().Game)
	g.Reset(testRuntime())
	g.Close()

	if g.loop.Listeners() != 0 || g.loop.PendingFrames() != 0 {
		t.Errorf("Close left listeners=%d frames=%d", g.loop.Listeners(), g.loop.PendingFrames())
	}
}

func TestRenderHeaderAndCart(t *testing.T) {
	g := NewWithConfig(config.Default().Game)
	g.Reset(testRuntime())

	in := core.NewInputFrame()
	in.Move(40, 20)
	g.Step(in)

	screen := core.NewScreen(80, 30)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, headerText) {
		t.Error("render should include the instructions header")
	}
	if !strings.Contains(out, "Items left:") {
		t.Error("render should include the items left counter")
	}
	if !strings.Contains(out, cartSprite[0]) {
		t.Errorf("render should include the cart sprite:\n%s", out)
	}
}
