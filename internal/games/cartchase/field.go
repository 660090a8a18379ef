// Package cartchase implements the storefront's cart chase mini-game: the
// player steers a shopping cart with the pointer and collects bouncing items.
//
// All geometry is in virtual pixels. The terminal layer converts cells to
// virtual pixels on input and back on render.
package cartchase

import (
	"slices"

	"github.com/vovakirdan/tui-shop/internal/core"
)

// PlayArea is the rectangle items bounce in. Items never enter the band
// above TopMargin, which is left to the header.
type PlayArea struct {
	Width     float64
	Height    float64
	TopMargin float64
}

// Valid reports whether an item of the given size fits inside the area.
func (a PlayArea) Valid(itemSize float64) bool {
	return a.Width-itemSize > 0 && a.Height-itemSize-a.TopMargin > 0
}

// Item is a collectible moving across the play area.
type Item struct {
	ID     string
	X, Y   float64 // Top-left corner
	DX, DY float64 // Velocity per frame
}

// Box returns the item's bounding box for the given item size.
func (it Item) Box(size float64) core.Box {
	return core.Box{X: it.X, Y: it.Y, W: size, H: size}
}

// Field holds the live state of one cart chase session. It is mutated only by
// Step, PointerMoved and Resize and is owned by a single goroutine.
type Field struct {
	area      PlayArea
	itemSize  float64
	actor     core.Box
	items     []Item
	collected int
}

// NewField creates a field with the actor at the origin and the given items.
// The items slice is copied.
func NewField(area PlayArea, itemSize, actorW, actorH float64, items []Item) *Field {
	return &Field{
		area:     area,
		itemSize: itemSize,
		actor:    core.Box{W: actorW, H: actorH},
		items:    slices.Clone(items),
	}
}

// Area returns the current play area.
func (f *Field) Area() PlayArea {
	return f.area
}

// ItemSize returns the side length of every item.
func (f *Field) ItemSize() float64 {
	return f.itemSize
}

// Actor returns the actor's bounding box.
func (f *Field) Actor() core.Box {
	return f.actor
}

// Items returns a snapshot of the live items.
func (f *Field) Items() []Item {
	return slices.Clone(f.items)
}

// Live returns the number of items still in play.
func (f *Field) Live() int {
	return len(f.items)
}

// Collected returns how many items have been removed so far.
func (f *Field) Collected() int {
	return f.collected
}

// PointerMoved centers the actor on the pointer and removes every item it now
// overlaps. It returns the number of items removed.
func (f *Field) PointerMoved(px, py float64) int {
	f.actor.X = px - f.actor.W/2
	f.actor.Y = py - f.actor.H/2
	return f.resolve()
}

// Overlaps reports whether the actor overlaps the item.
func (f *Field) Overlaps(it Item) bool {
	return f.actor.Overlaps(it.Box(f.itemSize))
}

func (f *Field) resolve() int {
	before := len(f.items)
	f.items = slices.DeleteFunc(f.items, f.Overlaps)
	removed := before - len(f.items)
	f.collected += removed
	return removed
}

// Step advances every live item by one frame. An item that leaves the area
// on an axis has that velocity component flipped and is clamped back inside.
// Steps on a degenerate area do nothing.
func (f *Field) Step() {
	if !f.area.Valid(f.itemSize) {
		return
	}
	maxX := f.area.Width - f.itemSize
	minY := f.area.TopMargin
	maxY := f.area.Height - f.itemSize

	for i := range f.items {
		it := &f.items[i]
		x := it.X + it.DX
		y := it.Y + it.DY

		if x < 0 || x > maxX {
			it.DX = -it.DX
		}
		if y < minY || y > maxY {
			it.DY = -it.DY
		}

		it.X = core.ClampF(x, 0, maxX)
		it.Y = core.ClampF(y, minY, maxY)
	}
}

// Resize switches to a new play area and pulls live items back inside it.
// Velocities are kept. A degenerate area leaves positions untouched until a
// usable size comes back.
func (f *Field) Resize(area PlayArea) {
	f.area = area
	if !area.Valid(f.itemSize) {
		return
	}
	maxX := area.Width - f.itemSize
	maxY := area.Height - f.itemSize
	for i := range f.items {
		f.items[i].X = core.ClampF(f.items[i].X, 0, maxX)
		f.items[i].Y = core.ClampF(f.items[i].Y, area.TopMargin, maxY)
	}
}
