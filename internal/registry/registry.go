// Package registry keeps the factories of the storefront's mini-games.
// Game packages register in init, so the runner and the CLI can create a
// game by id without importing it.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-shop/internal/core"
)

// Game is a mini-game driven by the terminal runner. Implementations hold
// no Bubble Tea state: the runner maps input, owns the tick and draws the
// screen they render into.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "cartchase").
	// Used for CLI commands and screenshot names.
	ID() string

	// Title returns a human-readable name for display (e.g., "Cart Chase").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again on restart.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input carries platform-level actions and pointer moves in cells.
	// Returns the result of this tick including current game state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (items left, collected, paused).
	State() core.GameState
}

// Resizer is implemented by games that can adapt to a new screen size
// without a Reset.
type Resizer interface {
	Resize(w, h int)
}

// Closer is implemented by games that hold subscriptions which must be
// released when the runner exits.
type Closer interface {
	Close()
}

// ErrUnknownGame is returned by Create for an id nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory under id. Games call it from init.
// Registering the same id twice panics.
func Register(id string, f Factory) {
	title := f().Title()

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{info: GameInfo{ID: id, Title: title}, factory: f}
}

// List returns the registered games sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return result
}

// Create returns a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
