//go:build ebiten

// Package ebiten presents the pixel buffer in an Ebitengine window.
// Ebitengine owns the main thread, so the surface is also a platform.Runner:
// the frame loop runs on its own goroutine while RunGame drives the window.
package ebiten

import (
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/platform"
	"github.com/lixenwraith/pong/render"
)

func init() {
	platform.Register("ebiten", func() platform.Surface { return New() })
}

// Surface bridges the frame loop and Ebitengine's update/draw callbacks
type Surface struct {
	mu      sync.Mutex
	keys    []string
	rgba    []byte
	pending bool

	width, height int

	scratch []ebiten.Key
	done    chan struct{}
	loopErr error
}

// New creates an unopened Ebitengine surface
func New() *Surface {
	return &Surface{}
}

// Open configures the window; it appears once Run starts the game
func (s *Surface) Open(width, height int, title string) error {
	if width <= 0 || height <= 0 {
		return errors.Errorf("invalid window size %dx%d", width, height)
	}
	s.width, s.height = width, height
	s.rgba = make([]byte, width*height*4)
	s.done = make(chan struct{})

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowClosingHandled(true)
	return nil
}

// Run starts loop on a goroutine and blocks in RunGame until loop returns
func (s *Surface) Run(loop func() error) error {
	go func() {
		defer close(s.done)
		s.loopErr = loop()
	}()

	if err := ebiten.RunGame(s); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run game")
	}
	<-s.done
	return s.loopErr
}

// Update collects key presses and terminates once the frame loop has finished
func (s *Surface) Update() error {
	select {
	case <-s.done:
		return ebiten.Termination
	default:
	}

	s.scratch = inpututil.AppendJustPressedKeys(s.scratch[:0])

	s.mu.Lock()
	for _, k := range s.scratch {
		s.keys = append(s.keys, KeyName(k))
	}
	if ebiten.IsWindowBeingClosed() {
		s.keys = append(s.keys, input.NameClose)
	}
	s.mu.Unlock()
	return nil
}

// Draw copies the latest presented frame to the screen
func (s *Surface) Draw(screen *ebiten.Image) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending {
		screen.WritePixels(s.rgba)
	}
}

// Layout keeps the logical screen at the buffer size
func (s *Surface) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.width, s.height
}

// KeyName converts an Ebitengine key to a canonical key name
func KeyName(k ebiten.Key) string {
	switch k {
	case ebiten.KeyArrowUp:
		return input.NameUp
	case ebiten.KeyArrowDown:
		return input.NameDown
	case ebiten.KeySpace:
		return input.NameSpace
	case ebiten.KeyEscape:
		return input.NameEscape
	}
	return strings.ToLower(k.String())
}

// PollKeys drains keys collected by Update since the last poll
func (s *Surface) PollKeys(dst []string) []string {
	s.mu.Lock()
	dst = append(dst, s.keys...)
	s.keys = s.keys[:0]
	s.mu.Unlock()
	return dst
}

// Present converts the packed buffer to RGBA for the next Draw
func (s *Surface) Present(pixels []uint32, width, height int) error {
	if err := platform.CheckFrame(pixels, width, height, s.width, s.height); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range pixels[:width*height] {
		c := render.Unpack(p)
		o := i * 4
		s.rgba[o] = c.R
		s.rgba[o+1] = c.G
		s.rgba[o+2] = c.B
		s.rgba[o+3] = 0xff
	}
	s.pending = true
	return nil
}

// Close is a no-op; the window closes when Run returns
func (s *Surface) Close() {}
