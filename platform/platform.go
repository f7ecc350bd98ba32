// Package platform defines the display/input collaborator the frame loop draws through.
//
// A backend opens a surface of exactly the requested pixel size, reports discrete
// key-down events as canonical lowercase names ("up", "down", "space", "escape",
// single letters, "close"), and presents packed 0x00RRGGBB pixel buffers.
// Backends are registered by name so the CLI can select one at runtime.
package platform

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// Surface is a presentable pixel surface with keyboard input
type Surface interface {
	// Open creates the surface; failures are fatal to the caller
	Open(width, height int, title string) error
	// PollKeys appends key-down names received since the last call, never blocks
	PollKeys(dst []string) []string
	// Present displays a row-major packed RGB buffer, replacing the prior frame
	Present(pixels []uint32, width, height int) error
	// Close releases the surface and restores the host display
	Close()
}

// Runner is implemented by backends that must own the calling (main) thread
// Run executes loop elsewhere and returns its error once it finishes
type Runner interface {
	Run(loop func() error) error
}

// Factory creates an unopened surface
type Factory func() Surface

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register makes a backend available by name, later registrations replace earlier ones
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// New creates an unopened surface for the named backend
func New(name string) (Surface, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, errors.Errorf("unknown backend %q (available: %v)", name, Names())
	}
	return factory(), nil
}

// Names lists registered backends in sorted order
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ErrSizeMismatch is returned by Present when the buffer does not match the opened surface
var ErrSizeMismatch = errors.New("pixel buffer size does not match surface")

// CheckFrame validates a Present call against the opened surface dimensions
func CheckFrame(pixels []uint32, width, height, wantWidth, wantHeight int) error {
	if width != wantWidth || height != wantHeight || len(pixels) < width*height {
		return errors.Wrapf(ErrSizeMismatch, "got %dx%d (%d px), surface %dx%d", width, height, len(pixels), wantWidth, wantHeight)
	}
	return nil
}
