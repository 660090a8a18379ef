package cartchase

import (
	"math/rand"

	"github.com/vovakirdan/tui-shop/internal/core"
)

// Host schedules frames and delivers pointer events. *core.Loop satisfies it.
type Host interface {
	RequestFrame(fn func()) core.FrameID
	CancelFrame(id core.FrameID)
	OnPointerMove(fn core.PointerFunc) (release func())
}

// Settings configures a component's field.
type Settings struct {
	Spawn       SpawnConfig
	ActorWidth  float64
	ActorHeight float64
}

// scope ties the handles acquired by one mount together. Callbacks check
// active before touching the field, so a callback that outlives its mount
// does nothing.
type scope struct {
	host    Host
	active  bool
	frame   core.FrameID
	release func()
}

// Component mounts a cart chase field on a host: it subscribes to pointer
// moves and keeps one frame callback pending that steps the simulation.
type Component struct {
	settings Settings
	rng      *rand.Rand
	field    *Field
	scope    *scope
}

// NewComponent creates an unmounted component that spawns from rng.
func NewComponent(settings Settings, rng *rand.Rand) *Component {
	return &Component{settings: settings, rng: rng}
}

// Field returns the field of the current mount, or nil before the first mount.
func (c *Component) Field() *Field {
	return c.field
}

// Mounted reports whether the component is attached to a host.
func (c *Component) Mounted() bool {
	return c.scope != nil && c.scope.active
}

// Mount spawns a fresh field for area and attaches to host. Mounting an
// already mounted component unmounts it first.
func (c *Component) Mount(host Host, area PlayArea) {
	c.Unmount()

	items := Spawn(c.rng, area, c.settings.Spawn)
	field := NewField(area, c.settings.Spawn.ItemSize, c.settings.ActorWidth, c.settings.ActorHeight, items)
	c.field = field

	s := &scope{host: host, active: true}
	c.scope = s

	s.release = host.OnPointerMove(func(x, y float64) {
		if !s.active {
			return
		}
		field.PointerMoved(x, y)
	})

	var frame func()
	frame = func() {
		if !s.active {
			return
		}
		field.Step()
		s.frame = host.RequestFrame(frame)
	}
	s.frame = host.RequestFrame(frame)
}

// Unmount releases the pointer subscription and cancels the pending frame.
// It is safe to call when not mounted.
func (c *Component) Unmount() {
	s := c.scope
	if s == nil || !s.active {
		return
	}
	s.active = false
	s.host.CancelFrame(s.frame)
	if s.release != nil {
		s.release()
	}
	c.scope = nil
}

// Resize forwards a new play area to the mounted field.
func (c *Component) Resize(area PlayArea) {
	if c.field != nil {
		c.field.Resize(area)
	}
}
