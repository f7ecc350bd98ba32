// Package headless is an offscreen surface fed by a key script.
// It backs tests and unattended runs (-backend headless -frames N).
package headless

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/lixenwraith/pong/platform"
)

func init() {
	platform.Register("headless", func() platform.Surface { return New() })
}

// Surface records presented frames and replays scripted key batches, one batch per poll
type Surface struct {
	mu       sync.Mutex
	width    int
	height   int
	title    string
	opened   bool
	closed   bool
	script   [][]string
	pending  []string
	last     []uint32
	presents int
	failAt   int
}

// New creates an unopened headless surface
func New() *Surface {
	return &Surface{}
}

// Script queues key batches; the Nth poll after this call returns the Nth batch
func (s *Surface) Script(batches ...[]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.script = append(s.script, batches...)
}

// Press queues keys for the next poll, ahead of any script
func (s *Surface) Press(names ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, names...)
}

// FailPresentAt makes the nth Present (1-based) fail, 0 disables
func (s *Surface) FailPresentAt(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failAt = n
}

// Open records the surface dimensions
func (s *Surface) Open(width, height int, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if width <= 0 || height <= 0 {
		return errors.Errorf("headless: invalid size %dx%d", width, height)
	}
	s.width, s.height, s.title = width, height, title
	s.last = make([]uint32, width*height)
	s.opened = true
	return nil
}

// PollKeys returns pending presses then the next scripted batch
func (s *Surface) PollKeys(dst []string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	dst = append(dst, s.pending...)
	s.pending = s.pending[:0]
	if len(s.script) > 0 {
		dst = append(dst, s.script[0]...)
		s.script = s.script[1:]
	}
	return dst
}

// Present copies the frame
func (s *Surface) Present(pixels []uint32, width, height int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.opened {
		return errors.New("headless: present before open")
	}
	s.presents++
	if s.failAt > 0 && s.presents == s.failAt {
		return errors.Errorf("headless: injected present failure at frame %d", s.presents)
	}
	if err := platform.CheckFrame(pixels, width, height, s.width, s.height); err != nil {
		return err
	}
	copy(s.last, pixels[:width*height])
	return nil
}

// Close marks the surface closed
func (s *Surface) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// LastFrame returns a copy of the most recently presented buffer
func (s *Surface) LastFrame() []uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]uint32, len(s.last))
	copy(out, s.last)
	return out
}

// Presents returns the number of Present calls
func (s *Surface) Presents() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.presents
}

// Title returns the title given to Open
func (s *Surface) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title
}

// Closed reports whether Close was called
func (s *Surface) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
