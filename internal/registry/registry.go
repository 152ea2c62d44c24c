// Package registry maps mode IDs to game factories.
// Modes register themselves in init() so the CLI and the TUI can list and
// create them without importing each one by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/new-barber/internal/core"
	"github.com/vovakirdan/new-barber/internal/engine"
)

// Game is what the platform drives: one fixed tick per Step, a render into
// a character screen, and a small state summary. Games hold no Bubble Tea code.
type Game interface {
	// ID is the stable identifier used on the command line and as the score slot.
	ID() string

	// Title is the display name.
	Title() string

	// Reset prepares a new session for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step applies the frame's actions and advances one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst, which the platform clears beforehand.
	Render(dst *core.Screen)

	// State summarises score, lives and phase.
	State() core.GameState
}

// Persistent is implemented by games that keep their own high score.
// The platform calls AttachStore before Reset.
type Persistent interface {
	AttachStore(store engine.HighScoreStore, logger *log.Logger)
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a factory. It panics on duplicate IDs.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered modes sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates the mode with the given ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
